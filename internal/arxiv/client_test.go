// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

func testCfg(baseURL string) types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "test/0.1",
		},
		BaseURL:         baseURL,
		SearchQuery:     `all:"gaussian splatting"`,
		PageSize:        2,
		MaxTotalResults: 10,
		RequestDelay:    0,
		CutoffYear:      2023,
	}
}

func testClient(server *httptest.Server, cfg types.FetchConfig) *Client {
	return &Client{
		direct:  server.Client(),
		proxied: server.Client(),
		cfg:     cfg,
		log:     zerolog.Nop(),
	}
}

func entryXML(id, title, published string) string {
	return fmt.Sprintf(`<entry>
		<id>http://arxiv.org/abs/%s</id>
		<title>%s</title>
		<summary>  An abstract
			spanning lines.  </summary>
		<published>%s</published>
		<updated>%s</updated>
		<link href="http://arxiv.org/abs/%s" rel="alternate" type="text/html"/>
		<link href="http://arxiv.org/pdf/%s" rel="related" type="application/pdf"/>
		<category term="cs.CV"/>
		<category term="cs.GR"/>
		<author><name> Ada Lovelace </name></author>
		<author><name>Carl Gauss</name></author>
	</entry>`, id, title, published, published, id, id)
}

func feedXML(entries ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">` + strings.Join(entries, "\n") + `</feed>`
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		idURL string
		want  string
	}{
		{"http://arxiv.org/abs/2401.12345v2", "2401.12345"},
		{"http://arxiv.org/abs/2401.12345", "2401.12345"},
		{"https://arxiv.org/abs/cs/0112017v1", "cs/0112017"},
		{"http://example.com/nothing-here", ""},
	}
	for _, tt := range tests {
		if got := extractID(tt.idURL); got != tt.want {
			t.Errorf("extractID(%q) = %q, want %q", tt.idURL, got, tt.want)
		}
	}
}

func TestFetchAllPagination(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query().Get("start"))

		if r.URL.Query().Get("sortBy") != "submittedDate" {
			t.Errorf("sortBy = %q, want submittedDate", r.URL.Query().Get("sortBy"))
		}

		switch r.URL.Query().Get("start") {
		case "0":
			fmt.Fprint(w, feedXML(
				entryXML("2401.00002v1", "Second   Paper", "2024-01-02T00:00:00Z"),
				entryXML("2401.00001v1", "First Paper", "2024-01-01T00:00:00Z"),
			))
		default:
			// Short page: end of results.
			fmt.Fprint(w, feedXML(
				entryXML("2312.00001v3", "Third Paper", "2023-12-01T00:00:00Z"),
			))
		}
	}))
	defer server.Close()

	client := testClient(server, testCfg(server.URL))
	papers, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}

	if len(requests) != 2 {
		t.Fatalf("expected 2 page requests, got %d (%v)", len(requests), requests)
	}
	if len(papers) != 3 {
		t.Fatalf("len(papers) = %d, want 3", len(papers))
	}

	first := papers[0]
	if first.ID != "2401.00002" {
		t.Errorf("id = %q, want version suffix stripped", first.ID)
	}
	if first.Title != "Second Paper" {
		t.Errorf("title = %q, want whitespace normalized", first.Title)
	}
	if first.Abstract != "An abstract spanning lines." {
		t.Errorf("abstract = %q, want whitespace normalized", first.Abstract)
	}
	if first.PDFURL != "http://arxiv.org/pdf/2401.00002v1" {
		t.Errorf("pdf_url = %q", first.PDFURL)
	}
	if first.AbsURL != "https://arxiv.org/abs/2401.00002" {
		t.Errorf("abs_url = %q", first.AbsURL)
	}
	if len(first.Categories) != 2 || first.Categories[0] != "cs.CV" {
		t.Errorf("categories = %v", first.Categories)
	}
	if len(first.Authors) != 2 || first.Authors[0] != "Ada Lovelace" {
		t.Errorf("authors = %v", first.Authors)
	}
	if first.Published.Year() != 2024 {
		t.Errorf("published = %v", first.Published)
	}
}

func TestFetchAllEmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedXML())
	}))
	defer server.Close()

	client := testClient(server, testCfg(server.URL))
	papers, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}
	if len(papers) != 0 {
		t.Errorf("len(papers) = %d, want 0", len(papers))
	}
}

func TestFetchAllStopsBelowCutoffYear(t *testing.T) {
	var pages int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		// Full page whose oldest entry predates the cutoff: no further
		// page can contain qualifying papers.
		fmt.Fprint(w, feedXML(
			entryXML("2301.00001v1", "Recent", "2023-01-01T00:00:00Z"),
			entryXML("2012.00001v1", "Ancient", "2020-12-01T00:00:00Z"),
		))
	}))
	defer server.Close()

	client := testClient(server, testCfg(server.URL))
	papers, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}
	if pages != 1 {
		t.Errorf("pages fetched = %d, want 1 (early exit)", pages)
	}
	// The client is a pure generator; the below-cutoff record is dropped
	// later by the pipeline's year filter.
	if len(papers) != 2 {
		t.Errorf("len(papers) = %d, want 2", len(papers))
	}
}

func TestFetchAllSafetyCap(t *testing.T) {
	var pages int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		fmt.Fprint(w, feedXML(
			entryXML("2401.00002v1", "A", "2024-01-02T00:00:00Z"),
			entryXML("2401.00001v1", "B", "2024-01-01T00:00:00Z"),
		))
	}))
	defer server.Close()

	cfg := testCfg(server.URL)
	cfg.MaxTotalResults = 4
	client := testClient(server, cfg)

	if _, err := client.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}
	if pages != 2 {
		t.Errorf("pages fetched = %d, want 2 (safety cap)", pages)
	}
}

func TestFetchAllHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(server, testCfg(server.URL))
	if _, err := client.FetchAll(context.Background()); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}
