// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv pages through arXiv API search results, newest submissions first.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/httputil"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

// whitespace collapses runs of whitespace inside titles and abstracts.
var whitespace = regexp.MustCompile(`\s+`)

// Client fetches paginated search results from the arXiv API.
type Client struct {
	direct  *http.Client
	proxied *http.Client
	cfg     types.FetchConfig
	log     zerolog.Logger
}

// NewClient builds a client with a direct transport and a proxy-aware
// fallback transport sharing the configured timeout.
func NewClient(cfg types.FetchConfig, log zerolog.Logger) *Client {
	return &Client{
		direct:  httputil.DirectClient(cfg.Timeout),
		proxied: httputil.ProxyClient(cfg.Timeout),
		cfg:     cfg,
		log:     log,
	}
}

// FetchAll requests pages of cfg.PageSize until the feed is exhausted, the
// safety cap is reached, or the oldest entry on a page already predates the
// cutoff year. Pages are submission-date descending, so once a page bottoms
// out below the cutoff no later page can contain a qualifying paper. A fixed
// delay separates consecutive page requests.
func (c *Client) FetchAll(ctx context.Context) ([]types.Paper, error) {
	var all []types.Paper

	for start := 0; start < c.cfg.MaxTotalResults; start += c.cfg.PageSize {
		if start > 0 && c.cfg.RequestDelay > 0 {
			c.log.Debug().Dur("delay", c.cfg.RequestDelay).Msg("waiting before next page")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.RequestDelay):
			}
		}

		c.log.Info().Int("start", start).Int("page_size", c.cfg.PageSize).Msg("fetching page")
		entries, err := c.fetchPage(ctx, start)
		if err != nil {
			return nil, fmt.Errorf("fetching results %d-%d: %w", start, start+c.cfg.PageSize, err)
		}
		if len(entries) == 0 {
			c.log.Debug().Msg("empty page, stopping")
			break
		}

		papers := make([]types.Paper, 0, len(entries))
		for _, entry := range entries {
			p, ok := entryToPaper(entry)
			if !ok {
				continue
			}
			papers = append(papers, p)
		}
		all = append(all, papers...)

		if len(papers) > 0 {
			oldest := papers[len(papers)-1].Published
			if !oldest.IsZero() && oldest.Year() < c.cfg.CutoffYear {
				c.log.Debug().Int("year", oldest.Year()).Msg("page bottomed out below cutoff year, stopping")
				break
			}
		}
		if len(entries) < c.cfg.PageSize {
			c.log.Debug().Int("entries", len(entries)).Msg("short page, end of results")
			break
		}
	}

	return all, nil
}

// fetchPage requests one page of results. The first attempt bypasses any
// local proxy; a connection failure is retried once through the proxy and a
// second failure is fatal for the page.
func (c *Client) fetchPage(ctx context.Context, start int) ([]atomEntry, error) {
	params := url.Values{}
	params.Set("search_query", c.cfg.SearchQuery)
	params.Set("start", strconv.Itoa(start))
	params.Set("max_results", strconv.Itoa(c.cfg.PageSize))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithFallback(ctx, c.direct, c.proxied, req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return feed.Entries, nil
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Links      []atomLink     `xml:"link"`
	Categories []atomCategory `xml:"category"`
	Authors    []atomAuthor   `xml:"author"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

// entryToPaper converts one feed entry into a Paper. Entries without a
// recognizable arXiv ID are dropped.
func entryToPaper(entry atomEntry) (types.Paper, bool) {
	id := extractID(entry.ID)
	if id == "" {
		return types.Paper{}, false
	}

	p := types.Paper{
		ID:       id,
		Title:    normalize(entry.Title),
		Abstract: normalize(entry.Summary),
		AbsURL:   "https://arxiv.org/abs/" + id,
		Tags:     []string{},
	}

	for _, link := range entry.Links {
		if link.Type == "application/pdf" {
			p.PDFURL = link.Href
			break
		}
	}
	for _, cat := range entry.Categories {
		p.Categories = append(p.Categories, cat.Term)
	}
	for _, a := range entry.Authors {
		p.Authors = append(p.Authors, strings.TrimSpace(a.Name))
	}

	if t, err := time.Parse(time.RFC3339, entry.Published); err == nil {
		p.Published = t
	}
	if t, err := time.Parse(time.RFC3339, entry.Updated); err == nil {
		p.Updated = t
	}
	return p, true
}

// extractID pulls the canonical arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2401.12345v2" → "2401.12345").
func extractID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}

func normalize(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
