package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/feed"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/store"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

var rssCmd = &cobra.Command{
	Use:   "rss",
	Short: "Generate the RSS feed from the paper store",
	RunE:  runRSS,
}

func init() {
	rssCmd.Flags().String("data", "data/papers.json", "path to the paper store")
	rssCmd.Flags().String("out", "dist/feed.xml", "output path for the feed")
	rssCmd.Flags().String("site-url", "https://devin100086.github.io/Awesome-Gaussian-Splatting", "public site URL")
	rssCmd.Flags().String("title", "Awesome Gaussian Splatting Latest Papers", "feed title")
	rssCmd.Flags().String("description", "Daily updated feed of the latest Gaussian Splatting papers from arXiv.", "feed description")
	rssCmd.Flags().Int("max-items", 50, "maximum number of feed items")
	rssCmd.Flags().Int("max-description", 500, "maximum item description length")

	rootCmd.AddCommand(rssCmd)
}

func runRSS(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)

	collection, err := store.Load(stringSetting(cmd, "data"))
	if err != nil {
		return err
	}

	cfg := types.FeedConfig{
		SiteURL:        stringSetting(cmd, "site-url"),
		Title:          stringSetting(cmd, "title"),
		Description:    stringSetting(cmd, "description"),
		MaxItems:       intSetting(cmd, "max-items"),
		MaxDescription: intSetting(cmd, "max-description"),
	}
	data, err := feed.Generate(collection, cfg)
	if err != nil {
		return err
	}

	out := stringSetting(cmd, "out")
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}
	log.Info().Str("path", out).Int("papers", collection.TotalCount).Msg("generated feed")
	return nil
}
