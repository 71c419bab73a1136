// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the paper collection as a single flat JSON document
// and reconciles freshly fetched papers against it.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Devin100086/Awesome-Gaussian-Splatting/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the collection at path. A missing file yields an empty
// collection, so first runs need no setup.
func Load(path string) (*types.Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.Collection{Papers: []types.Paper{}}, nil
		}
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}

	var c types.Collection
	if err := json.Unmarshal([]byte(DecodeFallback(raw)), &c); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", path, err)
	}
	return &c, nil
}

// DecodeFallback decodes raw text as UTF-8, stripping a BOM if present and
// retrying as cp1252 when the bytes are not valid UTF-8. As a last resort
// undecodable bytes become replacement characters instead of failing.
func DecodeFallback(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
		return string(decoded)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}

// Save writes the collection to path as one atomic operation: the document
// is marshaled into a temp file in the destination directory and renamed
// over path, so an aborted run never leaves a partial store behind.
func Save(path string, c *types.Collection) error {
	c.TotalCount = len(c.Papers)

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".papers-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing store: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
