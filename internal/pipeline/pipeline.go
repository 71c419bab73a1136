// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the acquisition flow: fetch, filter, classify,
// merge, enrich, persist. It is single-threaded by design — the delays
// between network calls throttle the remote services — and the store is
// written exactly once at the end, so an aborted run leaves the previous
// document untouched.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/figures"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/relevance"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/store"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

// Source produces raw papers from the literature API.
type Source interface {
	FetchAll(ctx context.Context) ([]types.Paper, error)
}

// FigureFinder locates a method figure for a paper's landing page.
type FigureFinder interface {
	Find(ctx context.Context, absURL string) (*figures.Figure, error)
}

// Pipeline wires the acquisition stages together.
type Pipeline struct {
	Source     Source
	Filter     *relevance.Filter
	Classifier store.Classifier
	Figures    FigureFinder
	Cfg        types.PipelineConfig
	Log        zerolog.Logger
}

// Run executes one batch run against the persisted store.
func (p *Pipeline) Run(ctx context.Context) error {
	collection, err := store.Load(p.Cfg.DataPath)
	if err != nil {
		return err
	}
	p.Log.Info().Int("existing", len(collection.Papers)).Msg("loaded store")

	fetched, err := p.Source.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetching papers: %w", err)
	}

	kept := make([]types.Paper, 0, len(fetched))
	for _, paper := range fetched {
		if paper.Published.Year() < p.Cfg.Fetch.CutoffYear {
			continue
		}
		if !p.Filter.Relevant(paper.Title, paper.Abstract) {
			p.Log.Debug().Str("id", paper.ID).Str("title", paper.Title).Msg("rejected by relevance filter")
			continue
		}
		kept = append(kept, paper)
	}
	p.Log.Info().Int("fetched", len(fetched)).Int("relevant", len(kept)).Msg("filtered fetch results")

	merged, newIDs := store.Merge(collection.Papers, kept, p.Classifier, p.Cfg.Fetch.CutoffYear)
	p.Log.Info().Int("added", len(newIDs)).Int("total", len(merged)).Msg("merged papers")

	if p.Figures != nil && !p.Cfg.Enrich.Disabled {
		p.enrich(ctx, merged, newIDs)
	}

	collection.Papers = merged
	collection.LastUpdated = time.Now().UTC()
	if err := store.Save(p.Cfg.DataPath, collection); err != nil {
		return err
	}
	p.Log.Info().Int("total", collection.TotalCount).Str("path", p.Cfg.DataPath).Msg("saved store")
	return nil
}

// enrich attaches method figures to the targeted papers, newest first,
// bounded by MaxPerRun. By default only the papers added this run are
// targeted; backfill mode targets every paper still missing a figure.
// Every failure is soft: log and move on.
func (p *Pipeline) enrich(ctx context.Context, papers []types.Paper, newIDs []string) {
	isNew := make(map[string]bool, len(newIDs))
	for _, id := range newIDs {
		isNew[id] = true
	}

	attempts := 0
	for i := range papers {
		if attempts >= p.Cfg.Enrich.MaxPerRun {
			p.Log.Info().Int("attempts", attempts).Msg("enrichment attempt budget spent")
			break
		}
		paper := &papers[i]
		if paper.MethodFigURL != "" {
			continue
		}
		if !p.Cfg.Enrich.Backfill && !isNew[paper.ID] {
			continue
		}

		if attempts > 0 && p.Cfg.Enrich.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.Cfg.Enrich.RequestDelay):
			}
		}
		attempts++

		fig, err := p.Figures.Find(ctx, paper.AbsURL)
		if err != nil {
			p.Log.Warn().Err(err).Str("id", paper.ID).Msg("figure enrichment failed")
			continue
		}
		if fig == nil {
			p.Log.Debug().Str("id", paper.ID).Msg("no qualifying figure")
			continue
		}

		paper.MethodFigURL = fig.URL
		paper.MethodFigSource = fig.Source
		paper.MethodFigCaption = fig.Caption
		p.Log.Info().Str("id", paper.ID).Str("figure", fig.URL).Msg("attached method figure")
	}
}
