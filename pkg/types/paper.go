// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper tracker.
package types

import "time"

// Paper holds one arXiv paper's canonical metadata and classification.
type Paper struct {
	// ID is the arXiv identifier with the version suffix stripped
	// (e.g. "2401.12345"). It is the unique key across the collection.
	ID string `json:"id"`

	// Title is the paper title, whitespace-normalized.
	Title string `json:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors"`

	// Abstract is the paper abstract, whitespace-normalized.
	Abstract string `json:"abstract"`

	// Published and Updated are the arXiv submission timestamps.
	Published time.Time `json:"published"`
	Updated   time.Time `json:"updated"`

	// Categories are the arXiv taxonomy codes (e.g. "cs.CV").
	Categories []string `json:"categories"`

	// PDFURL points at the paper PDF, AbsURL at the abstract landing page.
	PDFURL string `json:"pdf_url"`
	AbsURL string `json:"abs_url"`

	// Tags are classifier-assigned labels. The merge never overwrites a
	// non-empty tag list, so manual edits survive re-fetches.
	Tags []string `json:"tags"`

	// MethodFigURL, MethodFigSource and MethodFigCaption describe the
	// representative method figure found by enrichment. They stay absent
	// until enrichment succeeds and are never re-fetched once present.
	MethodFigURL     string `json:"method_fig_url,omitempty"`
	MethodFigSource  string `json:"method_fig_source,omitempty"`
	MethodFigCaption string `json:"method_fig_caption,omitempty"`
}

// Collection is the persisted paper store, sorted by Published descending.
type Collection struct {
	// LastUpdated is the timestamp of the last successful persist.
	LastUpdated time.Time `json:"last_updated"`

	// TotalCount mirrors len(Papers) in the persisted document.
	TotalCount int `json:"total_count"`

	Papers []Paper `json:"papers"`
}
