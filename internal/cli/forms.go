package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/wayfarer/internal/cli/formatter"
	"github.com/alexanderramin/wayfarer/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// wayfarerHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func wayfarerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateExistingFile accepts a path that points at a regular file.
func validateExistingFile(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("path is required")
	}
	info, err := os.Stat(expandHome(strings.TrimSpace(s)))
	if err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}

// newEditItemView builds the edit wizard for one roadmap item: status
// select, optional due date, and free-form notes. All three fields are
// collected first and applied as a single UpdateItem call, so the item
// changes atomically or not at all.
func newEditItemView(state *SharedState, itemID string) View {
	it, ok := state.App.Tracker.FindItem(itemID)
	if !ok {
		// Shouldn't happen: the detail view hides the edit action when
		// the item is gone. Degrade to an inert empty form.
		it = domain.Item{ID: itemID}
	}

	status := string(it.Status)
	due := ""
	if it.DueDate != nil {
		due = it.DueDate.Format("2006-01-02")
	}
	notes := it.UserNotes

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Not Started", string(domain.StatusNotStarted)),
					huh.NewOption("In Progress", string(domain.StatusInProgress)),
					huh.NewOption("Completed", string(domain.StatusCompleted)),
				).
				Value(&status),
			huh.NewInput().
				Title("Due Date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-09-30").
				Value(&due).
				Validate(validateOptionalDate),
			huh.NewText().
				Title("Notes").
				Placeholder("Personal notes for this item...").
				Value(&notes),
		),
	).WithTheme(wayfarerHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		s := domain.Status(status)
		upd := domain.ItemUpdate{
			Status:    &s,
			UserNotes: &notes,
		}
		if trimmed := strings.TrimSpace(due); trimmed == "" {
			upd.ClearDueDate = true
		} else {
			// Validated by the form; a parse failure here means the
			// validator and this parse disagree on the format.
			d, err := time.Parse("2006-01-02", trimmed)
			if err != nil {
				return noticeErr("invalid due date: " + trimmed)
			}
			upd.DueDate = &d
		}

		app := state.App
		return func() tea.Msg {
			if err := app.Tracker.UpdateItem(itemID, upd); err != nil {
				return noticeMsg{text: "Save failed: " + err.Error(), isErr: true}
			}
			return noticeMsg{text: "Saved."}
		}
	}

	return newWizardView(state, "Edit", form, done)
}

// newLoadFileView builds the open-file wizard: a single path input that
// replaces the current roadmap with the selected file's contents.
func newLoadFileView(state *SharedState) View {
	path := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Roadmap file path").
				Placeholder("~/roadmaps/my-roadmap.json").
				Value(&path).
				Validate(validateExistingFile),
		),
	).WithTheme(wayfarerHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			p := expandHome(strings.TrimSpace(path))
			if err := app.Tracker.LoadFile(p); err != nil {
				return noticeMsg{text: "Load failed: " + err.Error(), isErr: true}
			}
			return noticeMsg{text: "Loaded " + p}
		}
	}

	return newWizardView(state, "Open File", form, done)
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}
