// Package tracker owns the roadmap session state: the current
// document, the shared error message, and the loading flag.
//
// The document lives only in process memory. It is replaced atomically
// on load — never merged with a previous document — and mutated only
// through UpdateItem, which is copy-on-write at the item and document
// level. All unsaved edits are gone when the process exits unless
// exported to a file first.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/alexanderramin/wayfarer/internal/exporter"
	"github.com/alexanderramin/wayfarer/internal/importer"
	"github.com/alexanderramin/wayfarer/internal/logging"
	"github.com/charmbracelet/log"
)

var (
	// ErrLoadPending is returned when a load is requested while
	// another one is still in flight. Loads are serialized: the
	// second caller must retry after the first settles.
	ErrLoadPending = errors.New("a load is already in progress")

	// ErrNoDocument is returned by operations that need a loaded
	// roadmap when none is present.
	ErrNoDocument = errors.New("no roadmap loaded")

	// ErrItemNotFound is returned by UpdateItem for an unknown item
	// id. The document is left untouched.
	ErrItemNotFound = errors.New("item not found")
)

// Tracker is the single logical owner of roadmap state. The bubbletea
// event loop is the only writer, but load I/O runs on command
// goroutines, so all state access goes through the mutex.
type Tracker struct {
	source Source
	log    *log.Logger
	now    func() time.Time

	mu      sync.Mutex
	current *domain.Roadmap
	lastErr string
	loading bool
}

// New creates a Tracker with the given default source. A nil logger
// discards log output.
func New(source Source, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Tracker{
		source: source,
		log:    logger,
		now:    time.Now,
	}
}

// Current returns the current roadmap, or nil when none is loaded.
// The returned value is never mutated in place; treat it as read-only.
func (t *Tracker) Current() *domain.Roadmap {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Err returns the shared error message. One slot, last error wins;
// cleared by the next successful load.
func (t *Tracker) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// Loading reports whether a load is in flight.
func (t *Tracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Progress returns the completion percentage of the current roadmap.
// Always recomputed from current state, never cached.
func (t *Tracker) Progress() int {
	return t.Current().Progress()
}

// FindItem returns the first item matching id in the current roadmap.
func (t *Tracker) FindItem(id string) (domain.Item, bool) {
	return t.Current().FindItem(id)
}

// LoadDefault loads the configured well-known source.
func (t *Tracker) LoadDefault(ctx context.Context) error {
	return t.load(ctx, t.source)
}

// LoadFile loads a user-selected roadmap file.
func (t *Tracker) LoadFile(path string) error {
	return t.load(context.Background(), FileSource{Path: path})
}

// LoadBytes loads user-supplied raw bytes; origin names the source in
// error messages.
func (t *Tracker) LoadBytes(data []byte, origin string) error {
	return t.load(context.Background(), BytesSource{Name: origin, Data: data})
}

// load runs the full fetch → parse → validate → normalize → install
// pipeline. Installation is all-or-nothing: on any failure the
// previous document is untouched and only the error slot changes.
// The loading flag is always cleared when the load settles.
func (t *Tracker) load(ctx context.Context, src Source) error {
	if err := t.beginLoad(); err != nil {
		return err
	}

	data, err := src.Fetch(ctx)
	if err != nil {
		return t.fail(fmt.Errorf("loading %s: %w", src.Origin(), err))
	}

	doc, err := importer.Parse(data)
	if err != nil {
		return t.fail(fmt.Errorf("%s: %w", src.Origin(), err))
	}
	if errs := importer.ValidateDocument(doc); len(errs) > 0 {
		return t.fail(fmt.Errorf("%s: %w: %s", src.Origin(), importer.ErrFormat, joinErrors(errs)))
	}

	return t.install(importer.ToDomain(doc), src.Origin())
}

func (t *Tracker) beginLoad() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.loading {
		return ErrLoadPending
	}
	t.loading = true
	return nil
}

func (t *Tracker) fail(err error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	t.lastErr = err.Error()
	t.log.Error("load failed", "err", err)
	return err
}

func (t *Tracker) install(r *domain.Roadmap, origin string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	t.current = r
	t.lastErr = ""
	t.log.Info("roadmap loaded", "origin", origin, "title", r.Title, "items", len(r.Items))
	return nil
}

// UpdateItem applies a partial update to a single item as one atomic
// step. Unknown ids leave the document untouched and report
// ErrItemNotFound.
func (t *Tracker) UpdateItem(id string, upd domain.ItemUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return ErrNoDocument
	}
	next, ok := t.current.UpdateItem(id, upd)
	if !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	t.current = next
	t.log.Debug("item updated", "id", id)
	return nil
}

// Export writes the current document — including any edits — into dir
// and returns the path of the written file.
func (t *Tracker) Export(dir string) (string, error) {
	r := t.Current()
	if r == nil {
		return "", ErrNoDocument
	}
	path, err := exporter.Write(r, dir, t.now())
	if err != nil {
		t.log.Error("export failed", "err", err)
		return "", err
	}
	t.log.Info("roadmap exported", "path", path)
	return path, nil
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
