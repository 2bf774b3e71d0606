package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Error kinds surfaced by parsing and validation. Callers match with
// errors.Is to distinguish unreadable JSON from a wrong document shape.
var (
	// ErrParse means the content is not valid JSON at all.
	ErrParse = errors.New("not valid JSON")
	// ErrFormat means the JSON parsed but is not a roadmap document.
	ErrFormat = errors.New("invalid roadmap format")
)

// DocumentSchema is the top-level JSON structure of a roadmap file.
type DocumentSchema struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Items       []ItemSchema `json:"items"`
}

// ItemSchema defines one roadmap item in the document file.
// Status, UserNotes, and DueDate carry no omitempty so that exported
// documents are always fully populated (dueDate serializes as null
// when unset).
type ItemSchema struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Links       []LinkSchema `json:"links,omitempty"`
	Status      string       `json:"status"`
	UserNotes   string       `json:"userNotes"`
	DueDate     *string      `json:"dueDate"`
}

// LinkSchema is a titled URL attached to an item.
type LinkSchema struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Parse decodes raw bytes into a DocumentSchema. Structural mismatches
// (e.g. "items" holding a string instead of an array) report ErrFormat;
// anything that is not JSON reports ErrParse.
func Parse(data []byte) (*DocumentSchema, error) {
	var doc DocumentSchema
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "document"
			}
			return nil, fmt.Errorf("%w: %s must be of type %s", ErrFormat, field, typeErr.Type)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &doc, nil
}

// LoadDocument reads and parses a roadmap JSON file.
func LoadDocument(path string) (*DocumentSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
