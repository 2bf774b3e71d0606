package domain

// Status is the completion state of a roadmap item.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[string]bool{
	"not-started": true, "in-progress": true, "completed": true,
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return ValidStatuses[string(s)]
}
