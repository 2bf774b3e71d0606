package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/alexanderramin/wayfarer/internal/importer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoadmap() *domain.Roadmap {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Roadmap{
		Title:       "Go Developer Roadmap",
		Description: "from zero to production",
		Items: []domain.Item{
			{
				ID:     "basics",
				Title:  "Language Basics",
				Links:  []domain.Link{{Title: "tour", URL: "https://go.dev/tour"}},
				Status: domain.StatusCompleted,
			},
			{
				ID:        "concurrency",
				Title:     "Concurrency",
				Status:    domain.StatusInProgress,
				UserNotes: "reread the memory model",
				DueDate:   &due,
			},
		},
	}
}

func TestMarshal_NilRoadmap(t *testing.T) {
	_, err := Marshal(nil)
	require.Error(t, err)
}

func TestMarshal_TwoSpaceIndent(t *testing.T) {
	data, err := Marshal(sampleRoadmap())
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "{\n  \"title\""), "expected 2-space indentation, got: %.40q", s)
	assert.Contains(t, s, "\n      \"id\": \"basics\"")
}

func TestMarshal_IncludesNormalizedFields(t *testing.T) {
	data, err := Marshal(sampleRoadmap())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"userNotes": ""`, "empty notes still serialized")
	assert.Contains(t, s, `"dueDate": null`, "unset due date serialized as null")
	assert.Contains(t, s, `"dueDate": "2026-09-01"`)
}

func TestMarshal_RoundTrip(t *testing.T) {
	r := sampleRoadmap()

	data, err := Marshal(r)
	require.NoError(t, err)

	doc, err := importer.Parse(data)
	require.NoError(t, err)
	require.Empty(t, importer.ValidateDocument(doc))

	back := importer.ToDomain(doc)
	if diff := cmp.Diff(r, back); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "Go_Developer_Roadmap_2026-08-24.json", Filename("Go Developer Roadmap", now))
	assert.Equal(t, "Solo_2026-08-24.json", Filename("Solo", now))
	assert.Equal(t, "A_B_2026-08-24.json", Filename("A \t B", now))
	assert.Equal(t, "roadmap_2026-08-24.json", Filename("", now))
}

func TestWrite_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	path, err := Write(sampleRoadmap(), dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Go_Developer_Roadmap_2026-08-24.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc, err := importer.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer Roadmap", doc.Title)
}
