// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/forkify/pkg/types"
)

// Format selects the export encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ExportEntry is one bookmark as written by Export.
type ExportEntry struct {
	ID            string             `json:"id" yaml:"id"`
	Title         string             `json:"title" yaml:"title"`
	Publisher     string             `json:"publisher" yaml:"publisher"`
	ImageURL      string             `json:"image_url" yaml:"image_url"`
	SourceURL     string             `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	UserGenerated bool               `json:"user_generated" yaml:"user_generated"`
	Servings      int                `json:"servings,omitempty" yaml:"servings,omitempty"`
	CookingTime   int                `json:"cooking_time,omitempty" yaml:"cooking_time,omitempty"`
	Ingredients   []types.Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
}

// Export writes the bookmark list to w in the given format.
func (b *Bookmarks) Export(w io.Writer, format Format) error {
	entries := exportEntries(b.List())

	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// ExportFile writes the bookmark list to path, creating parent directories.
func (b *Bookmarks) ExportFile(path string, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := b.Export(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportEntries(recipes []types.Recipe) []ExportEntry {
	entries := make([]ExportEntry, len(recipes))
	for i, r := range recipes {
		entries[i] = ExportEntry{
			ID:            r.ID,
			Title:         r.Title,
			Publisher:     r.Publisher,
			ImageURL:      r.ImageURL,
			SourceURL:     r.SourceURL,
			UserGenerated: r.IsUserGenerated(),
			Servings:      r.Servings,
			CookingTime:   r.CookingTime,
			Ingredients:   r.Ingredients,
		}
	}
	return entries
}
