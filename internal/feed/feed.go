// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed renders the persisted collection as an RSS 2.0 document.
package feed

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

const (
	defaultMaxItems       = 50
	defaultMaxDescription = 500
	maxAuthors            = 5
)

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string   `xml:"title"`
	Link          string   `xml:"link"`
	Description   string   `xml:"description"`
	Language      string   `xml:"language"`
	LastBuildDate string   `xml:"lastBuildDate,omitempty"`
	AtomLink      atomLink `xml:"atom:link"`
	Items         []item   `xml:"item"`
}

// atomLink is the self-referencing feed-discovery link.
type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
	Author      string   `xml:"author,omitempty"`
}

// Generate renders the most recent papers as an RSS 2.0 document, capped at
// cfg.MaxItems. Item descriptions longer than cfg.MaxDescription are
// truncated with a trailing ellipsis marker.
func Generate(c *types.Collection, cfg types.FeedConfig) ([]byte, error) {
	maxItems := cfg.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxItems
	}
	maxDescription := cfg.MaxDescription
	if maxDescription <= 0 {
		maxDescription = defaultMaxDescription
	}

	papers := c.Papers
	if len(papers) > maxItems {
		papers = papers[:maxItems]
	}

	doc := rssDoc{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: channel{
			Title:       cfg.Title,
			Link:        cfg.SiteURL,
			Description: cfg.Description,
			Language:    "en-us",
			AtomLink: atomLink{
				Href: strings.TrimSuffix(cfg.SiteURL, "/") + "/feed.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
		},
	}
	if !c.LastUpdated.IsZero() {
		doc.Channel.LastBuildDate = rfc822(c.LastUpdated)
	}

	for _, p := range papers {
		it := item{
			Title:       p.Title,
			Link:        p.AbsURL,
			GUID:        p.AbsURL,
			Description: truncate(p.Abstract, maxDescription),
			Categories:  p.Tags,
			Author:      formatAuthors(p.Authors),
		}
		if !p.Published.IsZero() {
			it.PubDate = rfc822(p.Published)
		}
		doc.Channel.Items = append(doc.Channel.Items, it)
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling feed: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// rfc822 converts a timestamp to the RFC 822-style date format RSS requires.
func rfc822(t time.Time) string {
	return t.Format(time.RFC1123Z)
}

// truncate shortens s to at most max bytes, ending in "..." when cut.
// The cut never splits a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max-3]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut + "..."
}

// formatAuthors joins up to maxAuthors names, marking longer lists with "et al.".
func formatAuthors(authors []string) string {
	if len(authors) == 0 {
		return ""
	}
	if len(authors) <= maxAuthors {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:maxAuthors], ", ") + " et al."
}
