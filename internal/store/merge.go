// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"sort"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

// Classifier assigns tags to a paper's text. Satisfied by *tags.Classifier.
type Classifier interface {
	Classify(title, abstract string) []string
}

// Merge reconciles freshly fetched papers into the existing sequence,
// deduplicating by ID. Unknown IDs are classified and inserted; known IDs
// have every field overwritten except tags, which keep their old value when
// non-empty (manual curation wins) and are classified fresh otherwise.
// Method-figure fields survive updates: once enriched a paper is never
// re-fetched. Papers published before cutoffYear are pruned, and the result
// is re-sorted by published date descending. Equal timestamps keep their
// existing-before-new encounter order; no finer tie-break is defined.
//
// The returned newIDs list the inserted papers in encounter order; figure
// enrichment uses it to target only new papers.
func Merge(existing, fetched []types.Paper, classifier Classifier, cutoffYear int) (merged []types.Paper, newIDs []string) {
	index := make(map[string]int, len(existing))
	merged = make([]types.Paper, 0, len(existing)+len(fetched))
	for _, p := range existing {
		if _, ok := index[p.ID]; ok {
			continue
		}
		index[p.ID] = len(merged)
		merged = append(merged, p)
	}

	for _, p := range fetched {
		i, known := index[p.ID]
		if !known {
			p.Tags = classifier.Classify(p.Title, p.Abstract)
			index[p.ID] = len(merged)
			merged = append(merged, p)
			newIDs = append(newIDs, p.ID)
			continue
		}

		old := merged[i]
		merged[i] = p
		if len(old.Tags) > 0 {
			merged[i].Tags = old.Tags
		} else {
			merged[i].Tags = classifier.Classify(p.Title, p.Abstract)
		}
		if old.MethodFigURL != "" {
			merged[i].MethodFigURL = old.MethodFigURL
			merged[i].MethodFigSource = old.MethodFigSource
			merged[i].MethodFigCaption = old.MethodFigCaption
		}
	}

	kept := merged[:0:0]
	for _, p := range merged {
		if p.Published.Year() >= cutoffYear {
			kept = append(kept, p)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Published.After(kept[j].Published)
	})
	return kept, newIDs
}
