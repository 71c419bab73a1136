// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site builds the static browsable site from the persisted store.
// It is a stateless, single-pass transform: the HTML template gets the full
// collection embedded as inline data, assets are copied verbatim.
package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/internal/store"
	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

// dataPlaceholder marks where the template expects the collection data.
const dataPlaceholder = "/* __PAPERS_DATA_PLACEHOLDER__ */"

// assetDirs are copied into the dist tree when present under SrcDir.
var assetDirs = []string{"css", "js"}

// Build regenerates cfg.DistDir from scratch: index.html with the collection
// JSON injected, copied asset trees, and a copy of the store document for
// lazy loading.
func Build(cfg types.SiteConfig, log zerolog.Logger) error {
	if err := os.RemoveAll(cfg.DistDir); err != nil {
		return fmt.Errorf("cleaning dist directory: %w", err)
	}
	if err := os.MkdirAll(cfg.DistDir, 0o755); err != nil {
		return fmt.Errorf("creating dist directory: %w", err)
	}

	collection, err := store.Load(cfg.DataPath)
	if err != nil {
		return err
	}
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("marshaling collection: %w", err)
	}
	log.Info().Int("papers", collection.TotalCount).Msg("loaded store")

	template, err := readTextFallback(filepath.Join(cfg.SrcDir, "templates", "index.html"))
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	html := strings.Replace(template, dataPlaceholder, "const PAPERS_DATA = "+string(data)+";", 1)
	indexPath := filepath.Join(cfg.DistDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}
	log.Info().Str("path", indexPath).Msg("generated index.html")

	for _, dir := range assetDirs {
		src := filepath.Join(cfg.SrcDir, dir)
		if info, err := os.Stat(src); err != nil || !info.IsDir() {
			continue
		}
		if err := os.CopyFS(filepath.Join(cfg.DistDir, dir), os.DirFS(src)); err != nil {
			return fmt.Errorf("copying %s assets: %w", dir, err)
		}
		log.Info().Str("dir", dir).Msg("copied assets")
	}

	// The raw store document travels along so the page can lazy-load it.
	raw, err := os.ReadFile(cfg.DataPath)
	if err == nil {
		err = os.WriteFile(filepath.Join(cfg.DistDir, "papers.json"), raw, 0o644)
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("copying store document: %w", err)
	}

	return nil
}

// readTextFallback reads a text file through the store's encoding fallback
// chain, so a template saved with a BOM or as cp1252 still builds.
func readTextFallback(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return store.DecodeFallback(raw), nil
}
