package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gs-tracker/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the arXiv acquisition stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the arXiv API query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// SearchQuery is the arXiv search expression.
	SearchQuery string `json:"search_query" yaml:"search_query"`

	// PageSize is the number of results requested per page (default 100).
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxTotalResults is the safety cap on results fetched per run (default 5000).
	MaxTotalResults int `json:"max_total_results" yaml:"max_total_results"`

	// RequestDelay is the pause between consecutive page requests (default 3s).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// CutoffYear is the minimum publication year a paper must meet to stay
	// in the collection (default 2023).
	CutoffYear int `json:"cutoff_year" yaml:"cutoff_year"`
}

// EnrichConfig holds settings for the figure enrichment stage.
type EnrichConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestDelay is the pause between consecutive enrichment fetches (default 3s).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// MaxPerRun bounds the number of enrichment attempts per run (default 25).
	MaxPerRun int `json:"max_per_run" yaml:"max_per_run"`

	// Backfill targets every stored paper missing a figure instead of only
	// the newly added ones.
	Backfill bool `json:"backfill" yaml:"backfill"`

	// Disabled skips figure enrichment entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// PipelineConfig groups the acquisition stage configurations.
type PipelineConfig struct {
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Enrich EnrichConfig `json:"enrich" yaml:"enrich"`

	// DataPath is the location of the persisted papers document.
	DataPath string `json:"data_path" yaml:"data_path"`
}

// SiteConfig holds settings for the static site build.
type SiteConfig struct {
	// DataPath is the location of the persisted papers document.
	DataPath string `json:"data_path" yaml:"data_path"`

	// SrcDir contains templates/ plus optional css/ and js/ asset trees.
	SrcDir string `json:"src_dir" yaml:"src_dir"`

	// DistDir is the output directory; it is recreated on every build.
	DistDir string `json:"dist_dir" yaml:"dist_dir"`
}

// FeedConfig holds settings for RSS feed generation.
type FeedConfig struct {
	// SiteURL is the public URL the feed links back to.
	SiteURL string `json:"site_url" yaml:"site_url"`

	// Title and Description fill the RSS channel header.
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	// MaxItems caps the feed at the most recent papers (default 50).
	MaxItems int `json:"max_items" yaml:"max_items"`

	// MaxDescription caps item descriptions; longer abstracts are truncated
	// with a trailing ellipsis (default 500).
	MaxDescription int `json:"max_description" yaml:"max_description"`
}
