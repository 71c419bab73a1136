// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package figures locates a representative method figure for a paper from
// its rendered full-text HTML view. Everything here is best effort: any
// failure leaves the paper without a figure and the pipeline moves on.
package figures

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

// captionVocab rewards captions that talk about the paper's architecture
// or processing pipeline; one point per occurrence.
var captionVocab = []string{
	"architecture", "pipeline", "overview", "framework", "method",
	"approach", "workflow", "diagram", "structure", "overall",
}

// figureOneExpr carries a strong bonus: the first figure of a paper is very
// often the method overview.
var figureOneExpr = regexp.MustCompile(`(?i)\bfig(?:ure|\.)?\s*1\b`)

var whitespace = regexp.MustCompile(`\s+`)

// Figure is a selected method figure.
type Figure struct {
	// URL is the absolute image URL.
	URL string
	// Source is the rendered-HTML page the figure was taken from.
	Source string
	// Caption is the figure caption, possibly empty.
	Caption string
}

// Finder scrapes arXiv abs pages for the rendered-HTML alternate view and
// picks the figure most likely to show the paper's method.
type Finder struct {
	client *http.Client
	cfg    types.EnrichConfig
	log    zerolog.Logger
}

// NewFinder wires an HTTP client; a nil client gets the configured timeout.
func NewFinder(client *http.Client, cfg types.EnrichConfig, log zerolog.Logger) *Finder {
	if client == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 20 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Finder{client: client, cfg: cfg, log: log}
}

// Find fetches the paper's landing page, follows its link to the rendered
// full-text view, and returns the best-scoring figure. A nil Figure with a
// nil error means no alternate view or no qualifying figure was found.
func (f *Finder) Find(ctx context.Context, absURL string) (*Figure, error) {
	doc, err := f.fetchDocument(ctx, absURL)
	if err != nil {
		return nil, fmt.Errorf("landing page: %w", err)
	}

	htmlURL := findHTMLView(doc, absURL)
	if htmlURL == "" {
		f.log.Debug().Str("url", absURL).Msg("no rendered HTML view")
		return nil, nil
	}

	page, err := f.fetchDocument(ctx, htmlURL)
	if err != nil {
		return nil, fmt.Errorf("rendered view: %w", err)
	}
	return selectFigure(page, htmlURL), nil
}

func (f *Finder) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// findHTMLView locates a link to the rendered full-text view: an href on an
// "/html/" path whose visible label mentions HTML.
func findHTMLView(doc *goquery.Document, baseURL string) string {
	var out string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "/html/") {
			return true
		}
		label := strings.ToLower(sel.Text())
		if !strings.Contains(label, "html") {
			return true
		}
		out = resolveURL(baseURL, href)
		return false
	})
	return out
}

// selectFigure scores every figure block on the page and returns the winner
// with a resolvable image URL, or nil when none qualifies.
func selectFigure(doc *goquery.Document, pageURL string) *Figure {
	var best *Figure
	bestScore := math.Inf(-1)

	doc.Find("figure").Each(func(i int, sel *goquery.Selection) {
		img := sel.Find("img").First()
		src, ok := img.Attr("src")
		if !ok || strings.TrimSpace(src) == "" {
			return
		}
		imgURL := resolveURL(pageURL, src)
		if imgURL == "" {
			return
		}

		caption := strings.TrimSpace(sel.Find("figcaption").First().Text())
		if caption == "" {
			caption, _ = img.Attr("alt")
		}
		caption = strings.TrimSpace(whitespace.ReplaceAllString(caption, " "))

		if score := scoreCaption(caption, i); score > bestScore {
			bestScore = score
			best = &Figure{URL: imgURL, Source: pageURL, Caption: caption}
		}
	})
	return best
}

// scoreCaption implements the selection heuristic: a strong bonus for a
// literal "figure 1" reference, one point per vocabulary occurrence, and a
// small position penalty so earlier figures win ties.
func scoreCaption(caption string, position int) float64 {
	lower := strings.ToLower(caption)
	score := -0.1 * float64(position)
	if figureOneExpr.MatchString(caption) {
		score += 10
	}
	for _, term := range captionVocab {
		score += float64(strings.Count(lower, term))
	}
	return score
}

func resolveURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return b.ResolveReference(r).String()
}
