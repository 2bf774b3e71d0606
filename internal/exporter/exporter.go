// Package exporter serializes the in-memory roadmap back to a
// downloadable JSON file. The output is a pure projection of current
// state: edits made since load are included, and re-importing the
// result yields an equivalent document.
package exporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/alexanderramin/wayfarer/internal/importer"
)

// Marshal renders the roadmap as pretty-printed JSON with 2-space
// indentation and all normalized fields populated.
func Marshal(r *domain.Roadmap) ([]byte, error) {
	if r == nil {
		return nil, errors.New("no roadmap to export")
	}
	data, err := json.MarshalIndent(importer.FromDomain(r), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing roadmap: %w", err)
	}
	return append(data, '\n'), nil
}

// Filename returns the export file name for a roadmap title:
// whitespace runs become underscores, suffixed with the current date,
// e.g. "Go_Developer_Roadmap_2026-08-24.json".
func Filename(title string, now time.Time) string {
	name := strings.Join(strings.Fields(title), "_")
	if name == "" {
		name = "roadmap"
	}
	return fmt.Sprintf("%s_%s.json", name, now.Format("2006-01-02"))
}

// Write serializes the roadmap into dir using the derived filename and
// returns the path of the written file.
func Write(r *domain.Roadmap, dir string, now time.Time) (string, error) {
	data, err := Marshal(r)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating export dir: %w", err)
		}
	}
	path := filepath.Join(dir, Filename(r.Title, now))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}
