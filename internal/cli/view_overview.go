package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/wayfarer/internal/cli/formatter"
	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// roadmapLoadedMsg signals that a load has settled (success or failure;
// the outcome lives in the tracker's document and error slots).
type roadmapLoadedMsg struct {
	err error
}

// overviewView is the home screen: the roadmap item grid with the
// aggregate progress header.
type overviewView struct {
	state   *SharedState
	cursor  int
	loading bool
}

func newOverviewView(state *SharedState) *overviewView {
	return &overviewView{state: state}
}

func (v *overviewView) ID() ViewID { return ViewOverview }

func (v *overviewView) Title() string {
	if r := v.state.App.Tracker.Current(); r != nil {
		return r.Title
	}
	return "Overview"
}

func (v *overviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *overviewView) Init() tea.Cmd {
	// Load the default source once at startup; a reload is explicit.
	if v.state.App.Tracker.Current() == nil && !v.state.App.Tracker.Loading() {
		v.loading = true
		return v.loadDefault()
	}
	return nil
}

func (v *overviewView) loadDefault() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return roadmapLoadedMsg{err: app.Tracker.LoadDefault(context.Background())}
	}
}

func (v *overviewView) export() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		path, err := app.Tracker.Export(app.Config.ExportDir)
		if err != nil {
			return noticeMsg{text: "Export failed: " + err.Error(), isErr: true}
		}
		return noticeMsg{text: "Exported to " + path}
	}
}

func (v *overviewView) items() []domain.Item {
	if r := v.state.App.Tracker.Current(); r != nil {
		return r.Items
	}
	return nil
}

func (v *overviewView) clampCursor() {
	if n := len(v.items()); v.cursor >= n && n > 0 {
		v.cursor = n - 1
	} else if n == 0 {
		v.cursor = 0
	}
}

func (v *overviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		v.loading = false
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		items := v.items()

		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(items)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(items) {
				return v, pushView(newDetailView(v.state, items[v.cursor].ID))
			}
		case "o":
			return v, pushView(newLoadFileView(v.state))
		case "e":
			return v, v.export()
		case "r":
			if !v.loading {
				v.loading = true
				return v, v.loadDefault()
			}
		}
	}
	return v, nil
}

func (v *overviewView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading roadmap...")
	}

	r := v.state.App.Tracker.Current()
	if r == nil {
		var b strings.Builder
		b.WriteString("\n  " + formatter.Dim("No roadmap loaded."))
		if errMsg := v.state.App.Tracker.Err(); errMsg != "" {
			b.WriteString("\n\n  " + formatter.StyleRed.Render("✗ "+errMsg))
		}
		b.WriteString("\n\n  " + formatter.Dim("o: open a roadmap file  r: retry  q: quit"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(r.Title) + "\n")
	if r.Description != "" {
		b.WriteString("  " + formatter.Dim(r.Description) + "\n")
	}

	// Progress is recomputed from current state on every render.
	completed := r.CompletedCount()
	b.WriteString(fmt.Sprintf("  %s  %s\n\n",
		formatter.RenderProgress(float64(r.Progress())/100, 24),
		formatter.Dim(fmt.Sprintf("%d of %d completed", completed, len(r.Items)))))

	if len(r.Items) == 0 {
		b.WriteString("  " + formatter.Dim("This roadmap has no items."))
		return b.String()
	}

	for i, it := range r.Items {
		b.WriteString(v.renderRow(it, i == v.cursor))
		b.WriteByte('\n')
	}

	return b.String()
}

func (v *overviewView) renderRow(it domain.Item, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}

	line := fmt.Sprintf("%s%s %s", cursor, formatter.StatusIcon(it.Status), it.Title)

	if it.DueDate != nil {
		line += "  " + formatter.RelativeDateStyled(*it.DueDate)
	}
	if it.UserNotes != "" {
		line += "  " + formatter.Dim("✎")
	}

	if v.state.Width > 0 {
		line = lipgloss.NewStyle().MaxWidth(v.state.Width).Render(line)
	}
	return line
}
