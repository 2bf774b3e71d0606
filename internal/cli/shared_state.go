package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Transient status-bar notice (save confirmation, export path).
	// Cleared on the next keypress.
	Notice    string
	NoticeErr bool
}

// SetNotice stores a transient status-bar notice.
func (s *SharedState) SetNotice(text string, isErr bool) {
	s.Notice = text
	s.NoticeErr = isErr
}

// ClearNotice dismisses the current notice.
func (s *SharedState) ClearNotice() {
	s.Notice = ""
	s.NoticeErr = false
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
