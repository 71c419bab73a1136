package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/arxiv"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/figures"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/pipeline"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/relevance"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/tags"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "gs-tracker/0.1"
	defaultBaseURL    = "https://export.arxiv.org/api/query"
	defaultQuery      = `all:"gaussian splatting" OR all:"3d gaussian" OR all:"3dgs" OR all:"gaussian splat"`
	defaultCutoffYear = 2023
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch new papers from arXiv and update the store",
	Long: `Fetch pages through the arXiv API query results newest first, filters
them for relevance, classifies them into topic tags, merges them into the
persisted collection, and attaches method figures scraped from the arXiv
HTML view where one exists. The store is written once, atomically, at the
end of the run.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("data", "data/papers.json", "path to the paper store")
	fetchCmd.Flags().String("query", defaultQuery, "arXiv search query")
	fetchCmd.Flags().String("base-url", defaultBaseURL, "arXiv API endpoint")
	fetchCmd.Flags().Int("page-size", 100, "results per API page")
	fetchCmd.Flags().Int("max-results", 5000, "maximum results to page through")
	fetchCmd.Flags().Duration("delay", 3*time.Second, "delay between consecutive API pages")
	fetchCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	fetchCmd.Flags().Int("cutoff-year", defaultCutoffYear, "drop papers published before this year")
	fetchCmd.Flags().String("rules", "", "YAML file overriding the built-in tag rules")
	fetchCmd.Flags().Int("max-figures", 25, "maximum figure enrichment attempts per run")
	fetchCmd.Flags().Duration("figure-delay", 2*time.Second, "delay between figure enrichment requests")
	fetchCmd.Flags().Bool("backfill-figures", false, "retry figure enrichment for all papers missing one")
	fetchCmd.Flags().Bool("no-figures", false, "skip figure enrichment entirely")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	timeout := durationSetting(cmd, "timeout")
	cfg := types.PipelineConfig{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: defaultUserAgent,
			},
			BaseURL:         stringSetting(cmd, "base-url"),
			SearchQuery:     stringSetting(cmd, "query"),
			PageSize:        intSetting(cmd, "page-size"),
			MaxTotalResults: intSetting(cmd, "max-results"),
			RequestDelay:    durationSetting(cmd, "delay"),
			CutoffYear:      intSetting(cmd, "cutoff-year"),
		},
		Enrich: types.EnrichConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: defaultUserAgent,
			},
			RequestDelay: durationSetting(cmd, "figure-delay"),
			MaxPerRun:    intSetting(cmd, "max-figures"),
		},
		DataPath: stringSetting(cmd, "data"),
	}
	cfg.Enrich.Backfill, _ = cmd.Flags().GetBool("backfill-figures")
	cfg.Enrich.Disabled, _ = cmd.Flags().GetBool("no-figures")

	classifier := tags.Default()
	if rulesPath := stringSetting(cmd, "rules"); rulesPath != "" {
		rules, err := tags.LoadRules(rulesPath)
		if err != nil {
			return err
		}
		classifier, err = tags.New(rules)
		if err != nil {
			return err
		}
		log.Info().Str("path", rulesPath).Int("rules", len(rules)).Msg("loaded tag rules")
	}

	p := &pipeline.Pipeline{
		Source:     arxiv.NewClient(cfg.Fetch, log),
		Filter:     relevance.Default(),
		Classifier: classifier,
		Figures:    figures.NewFinder(nil, cfg.Enrich, log),
		Cfg:        cfg,
		Log:        log,
	}
	return p.Run(cmd.Context())
}
