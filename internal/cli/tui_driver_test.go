package cli

import (
	"testing"

	"github.com/alexanderramin/wayfarer/internal/config"
	"github.com/alexanderramin/wayfarer/internal/teatest"
	"github.com/alexanderramin/wayfarer/internal/tracker"
)

// testRoadmapJSON is a small valid roadmap used across the TUI tests:
// three items, one completed, one with a due date and notes.
const testRoadmapJSON = `{
  "title": "Go Developer",
  "description": "A roadmap for learning Go",
  "items": [
    {
      "id": "basics",
      "title": "Language Basics",
      "description": "Syntax, types, control flow",
      "links": [{"title": "Tour of Go", "url": "https://go.dev/tour"}],
      "status": "completed",
      "userNotes": "done in week one",
      "dueDate": null
    },
    {
      "id": "concurrency",
      "title": "Concurrency",
      "description": "Goroutines and channels",
      "links": [],
      "status": "in-progress",
      "userNotes": "",
      "dueDate": "2026-09-15"
    },
    {
      "id": "stdlib",
      "title": "Standard Library",
      "description": "",
      "links": [],
      "status": "not-started",
      "userNotes": "",
      "dueDate": null
    }
  ]
}`

// newTestApp wires an App whose default source serves doc from memory,
// so LoadDefault settles synchronously inside the driver's drain.
func newTestApp(t *testing.T, doc string) *App {
	t.Helper()
	return &App{
		Tracker: tracker.New(tracker.BytesSource{Name: "test roadmap", Data: []byte(doc)}, nil),
		Config: config.Config{
			Source:    "test roadmap",
			ExportDir: t.TempDir(),
		},
		IsInteractive: func() bool { return true },
	}
}

// TestDriver wraps teatest.Driver with appModel inspection helpers.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel for app, sets the terminal
// size, and drains Init() (which loads the default source).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(100, 30))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
