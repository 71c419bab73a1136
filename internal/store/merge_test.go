// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

// stubClassifier returns fixed tags and counts invocations.
type stubClassifier struct {
	tags  []string
	calls int
}

func (s *stubClassifier) Classify(title, abstract string) []string {
	s.calls++
	return s.tags
}

func paper(id string, published time.Time) types.Paper {
	return types.Paper{
		ID:        id,
		Title:     "Paper " + id,
		Abstract:  "abstract " + id,
		Published: published,
		Updated:   published,
		AbsURL:    "https://arxiv.org/abs/" + id,
	}
}

var (
	day1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	day3 = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
)

func TestMergeInsertsAndClassifiesNewPapers(t *testing.T) {
	classifier := &stubClassifier{tags: []string{"Rendering"}}

	merged, newIDs := Merge(nil, []types.Paper{paper("a", day1), paper("b", day2)}, classifier, 2023)

	require.Len(t, merged, 2)
	assert.Equal(t, []string{"b", "a"}, []string{merged[0].ID, merged[1].ID}, "sorted published descending")
	assert.Equal(t, []string{"a", "b"}, newIDs, "new ids in encounter order")
	assert.Equal(t, []string{"Rendering"}, merged[0].Tags)
	assert.Equal(t, 2, classifier.calls)
}

func TestMergeDeduplicatesByID(t *testing.T) {
	classifier := &stubClassifier{}
	existing := []types.Paper{paper("a", day1)}
	fetched := []types.Paper{paper("a", day1), paper("a", day1)}

	merged, newIDs := Merge(existing, fetched, classifier, 2023)

	assert.Len(t, merged, 1)
	assert.Empty(t, newIDs)
}

func TestMergeIdempotent(t *testing.T) {
	classifier := &stubClassifier{tags: []string{"Mesh"}}
	first, _ := Merge(nil, []types.Paper{paper("a", day1), paper("b", day2)}, classifier, 2023)

	second, newIDs := Merge(first, first, classifier, 2023)

	assert.Equal(t, first, second, "re-merging an unchanged fetch is a no-op")
	assert.Empty(t, newIDs)
}

func TestMergePreservesManualTags(t *testing.T) {
	curated := paper("a", day1)
	curated.Tags = []string{"Hand-Picked"}

	fresh := paper("a", day1)
	fresh.Title = "Paper a (v2)"

	classifier := &stubClassifier{tags: []string{"Auto"}}
	merged, _ := Merge([]types.Paper{curated}, []types.Paper{fresh}, classifier, 2023)

	require.Len(t, merged, 1)
	assert.Equal(t, []string{"Hand-Picked"}, merged[0].Tags, "non-empty tags must survive re-fetch")
	assert.Equal(t, "Paper a (v2)", merged[0].Title, "non-tag fields are refreshed")
	assert.Equal(t, 0, classifier.calls)
}

func TestMergeReclassifiesEmptyTags(t *testing.T) {
	existing := paper("a", day1) // no tags yet
	classifier := &stubClassifier{tags: []string{"Auto"}}

	merged, _ := Merge([]types.Paper{existing}, []types.Paper{paper("a", day1)}, classifier, 2023)

	require.Len(t, merged, 1)
	assert.Equal(t, []string{"Auto"}, merged[0].Tags)
}

func TestMergePreservesEnrichment(t *testing.T) {
	enriched := paper("a", day1)
	enriched.MethodFigURL = "https://arxiv.org/html/a/x2.png"
	enriched.MethodFigSource = "https://arxiv.org/html/a"
	enriched.MethodFigCaption = "Figure 1: overview"

	classifier := &stubClassifier{}
	merged, _ := Merge([]types.Paper{enriched}, []types.Paper{paper("a", day1)}, classifier, 2023)

	require.Len(t, merged, 1)
	assert.Equal(t, enriched.MethodFigURL, merged[0].MethodFigURL)
	assert.Equal(t, enriched.MethodFigSource, merged[0].MethodFigSource)
	assert.Equal(t, enriched.MethodFigCaption, merged[0].MethodFigCaption)
}

func TestMergePrunesBelowCutoffYear(t *testing.T) {
	stale := paper("old", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC))
	classifier := &stubClassifier{}

	// The stale paper sits in the existing store: pruning applies on every
	// merge, not just to new fetches.
	merged, newIDs := Merge([]types.Paper{stale}, []types.Paper{paper("new", day3)}, classifier, 2023)

	require.Len(t, merged, 1)
	assert.Equal(t, "new", merged[0].ID)
	assert.Equal(t, []string{"new"}, newIDs)
	for _, p := range merged {
		assert.GreaterOrEqual(t, p.Published.Year(), 2023)
	}
}

func TestMergeSortsPublishedDescending(t *testing.T) {
	classifier := &stubClassifier{}
	merged, _ := Merge(
		[]types.Paper{paper("mid", day2)},
		[]types.Paper{paper("new", day3), paper("old", day1)},
		classifier, 2023,
	)

	require.Len(t, merged, 3)
	assert.Equal(t, []string{"new", "mid", "old"},
		[]string{merged[0].ID, merged[1].ID, merged[2].ID})
}
