package tracker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
	"title": "Go Roadmap",
	"items": [
		{"id": "a", "title": "Basics", "status": "completed"},
		{"id": "b", "title": "Concurrency"},
		{"id": "c", "title": "Generics"}
	]
}`

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	return New(BytesSource{Name: "test", Data: []byte(validDoc)}, nil)
}

func loadedTracker(t *testing.T) *Tracker {
	t.Helper()
	tr := newTestTracker(t)
	require.NoError(t, tr.LoadDefault(context.Background()))
	return tr
}

func TestLoadDefault_InstallsDocument(t *testing.T) {
	tr := loadedTracker(t)

	r := tr.Current()
	require.NotNil(t, r)
	assert.Equal(t, "Go Roadmap", r.Title)
	assert.Len(t, r.Items, 3)
	assert.Empty(t, tr.Err())
	assert.False(t, tr.Loading())
}

func TestLoadBytes_NormalizesItems(t *testing.T) {
	tr := newTestTracker(t)
	require.NoError(t, tr.LoadBytes([]byte(`{"title":"T","items":[{"id":"x"}]}`), "upload"))

	it, ok := tr.FindItem("x")
	require.True(t, ok)
	assert.Equal(t, domain.StatusNotStarted, it.Status)
	assert.Equal(t, "", it.UserNotes)
	assert.Nil(t, it.DueDate)
}

func TestLoadBytes_InvalidFormatKeepsPriorDocument(t *testing.T) {
	tr := loadedTracker(t)

	err := tr.LoadBytes([]byte(`{"items":[]}`), "upload")
	require.Error(t, err)

	r := tr.Current()
	require.NotNil(t, r, "prior document must survive a failed load")
	assert.Equal(t, "Go Roadmap", r.Title)
	assert.Contains(t, tr.Err(), "title is required")
	assert.False(t, tr.Loading())
}

func TestLoadBytes_ParseErrorSetsErrorSlot(t *testing.T) {
	tr := newTestTracker(t)

	err := tr.LoadBytes([]byte("not json"), "upload")
	require.Error(t, err)
	assert.Nil(t, tr.Current())
	assert.NotEmpty(t, tr.Err())
}

func TestLoad_SuccessClearsErrorSlot(t *testing.T) {
	tr := newTestTracker(t)
	_ = tr.LoadBytes([]byte("not json"), "upload")
	require.NotEmpty(t, tr.Err())

	require.NoError(t, tr.LoadDefault(context.Background()))
	assert.Empty(t, tr.Err())
}

func TestLoadFile_MissingFile(t *testing.T) {
	tr := newTestTracker(t)

	err := tr.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, tr.Err(), "reading file")
}

func TestLoadFile_ReplacesDocumentAtomically(t *testing.T) {
	tr := loadedTracker(t)

	path := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title":"Other","items":[]}`), 0644))

	require.NoError(t, tr.LoadFile(path))
	assert.Equal(t, "Other", tr.Current().Title)
	assert.Len(t, tr.Current().Items, 0)
}

func TestLoadDefault_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(validDoc))
	}))
	defer srv.Close()

	tr := New(HTTPSource{URL: srv.URL, Client: srv.Client()}, nil)
	require.NoError(t, tr.LoadDefault(context.Background()))
	assert.Equal(t, "Go Roadmap", tr.Current().Title)
}

func TestLoadDefault_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	tr := New(HTTPSource{URL: srv.URL, Client: srv.Client()}, nil)
	err := tr.LoadDefault(context.Background())
	require.Error(t, err)
	assert.Nil(t, tr.Current())
	assert.Contains(t, tr.Err(), "404")
	assert.False(t, tr.Loading())
}

// gatedSource blocks Fetch until released, letting tests observe the
// in-flight loading state.
type gatedSource struct {
	release chan struct{}
	data    []byte
}

func (s *gatedSource) Fetch(context.Context) ([]byte, error) {
	<-s.release
	return s.data, nil
}

func (s *gatedSource) Origin() string { return "gated" }

func TestLoad_RejectsOverlappingLoads(t *testing.T) {
	src := &gatedSource{release: make(chan struct{}), data: []byte(validDoc)}
	tr := New(src, nil)

	done := make(chan error, 1)
	go func() { done <- tr.LoadDefault(context.Background()) }()

	require.Eventually(t, tr.Loading, time.Second, time.Millisecond)

	err := tr.LoadBytes([]byte(validDoc), "second")
	assert.ErrorIs(t, err, ErrLoadPending)

	close(src.release)
	require.NoError(t, <-done)
	assert.False(t, tr.Loading())
	assert.Equal(t, "Go Roadmap", tr.Current().Title)
}

func TestUpdateItem_ReflectedInProgress(t *testing.T) {
	tr := loadedTracker(t)
	assert.Equal(t, 33, tr.Progress())

	status := domain.StatusCompleted
	require.NoError(t, tr.UpdateItem("b", domain.ItemUpdate{Status: &status}))
	assert.Equal(t, 67, tr.Progress())
}

func TestUpdateItem_UnknownID(t *testing.T) {
	tr := loadedTracker(t)
	before := tr.Current()

	status := domain.StatusCompleted
	err := tr.UpdateItem("missing-id", domain.ItemUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Same(t, before, tr.Current(), "failed update must not touch the document")
}

func TestUpdateItem_NoDocument(t *testing.T) {
	tr := newTestTracker(t)
	err := tr.UpdateItem("a", domain.ItemUpdate{})
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestExport_NoDocument(t *testing.T) {
	tr := newTestTracker(t)
	_, err := tr.Export(t.TempDir())
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestExport_IncludesEdits(t *testing.T) {
	tr := loadedTracker(t)
	tr.now = func() time.Time { return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC) }

	notes := "exported with edits"
	status := domain.StatusCompleted
	require.NoError(t, tr.UpdateItem("c", domain.ItemUpdate{Status: &status, UserNotes: &notes}))

	dir := t.TempDir()
	path, err := tr.Export(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Go_Roadmap_2026-08-24.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exported with edits")

	// Round-trip: the exported file loads back to an equivalent document.
	edited := tr.Current()
	require.NoError(t, tr.LoadFile(path))
	assert.Equal(t, edited, tr.Current())
}

func TestResolve(t *testing.T) {
	assert.IsType(t, HTTPSource{}, Resolve("https://example.com/roadmap.json"))
	assert.IsType(t, HTTPSource{}, Resolve("http://example.com/roadmap.json"))
	assert.IsType(t, FileSource{}, Resolve("roadmaps/go.json"))
}
