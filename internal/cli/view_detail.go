package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wayfarer/internal/cli/formatter"
	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// detailView shows a single roadmap item in full: description, links,
// status, due date and notes. It holds only the item id and re-reads
// the item from the tracker on every render, so edits made by a form
// above it are reflected as soon as the form closes.
type detailView struct {
	state  *SharedState
	itemID string
}

func newDetailView(state *SharedState, itemID string) *detailView {
	return &detailView{state: state, itemID: itemID}
}

func (v *detailView) ID() ViewID { return ViewDetail }

func (v *detailView) item() (domain.Item, bool) {
	return v.state.App.Tracker.FindItem(v.itemID)
}

func (v *detailView) Title() string {
	if it, ok := v.item(); ok {
		return it.Title
	}
	return "Item"
}

func (v *detailView) ShortHelp() []key.Binding {
	if _, ok := v.item(); !ok {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	}
}

func (v *detailView) Init() tea.Cmd { return nil }

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if _, ok := v.item(); ok && msg.String() == "e" {
			return v, pushView(newEditItemView(v.state, v.itemID))
		}
	}
	return v, nil
}

func (v *detailView) View() string {
	it, ok := v.item()
	if !ok {
		// The item vanished underneath us (a new roadmap was loaded).
		// Offer no edit actions; esc returns to the overview.
		return "\n  " + formatter.StyleRed.Render("✗ This item is no longer part of the loaded roadmap.") +
			"\n\n  " + formatter.Dim("esc: back")
	}

	var b strings.Builder

	b.WriteString("\n  " + formatter.Bold(it.Title) + "\n")
	b.WriteString("  " + formatter.StatusPill(it.Status))
	if it.DueDate != nil {
		b.WriteString("  " + formatter.Dim("due") + " " +
			formatter.HumanDate(*it.DueDate) + " " +
			formatter.Dim("("+formatter.RelativeDate(*it.DueDate)+")"))
	}
	b.WriteString("\n\n")

	if it.Description != "" {
		b.WriteString(indent(it.Description) + "\n\n")
	}

	if len(it.Links) > 0 {
		b.WriteString("  " + formatter.Header("Resources") + "\n")
		for _, l := range it.Links {
			label := l.Title
			if label == "" {
				label = l.URL
			}
			b.WriteString(fmt.Sprintf("  %s %s\n    %s\n",
				formatter.StyleBlue.Render("•"), label, formatter.Dim(l.URL)))
		}
		b.WriteByte('\n')
	}

	b.WriteString("  " + formatter.Header("Notes") + "\n")
	if it.UserNotes == "" {
		b.WriteString("  " + formatter.Dim("No notes yet. Press e to edit.") + "\n")
	} else {
		b.WriteString(indent(it.UserNotes) + "\n")
	}

	return b.String()
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
