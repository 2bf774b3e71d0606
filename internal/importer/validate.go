package importer

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// docSchema is the compiled JSON Schema for roadmap documents.
var docSchema = jsonschema.MustCompileString("roadmap.schema.json", schemaJSON)

// ValidateDocument checks the parsed document for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateDocument(doc *DocumentSchema) []error {
	var errs []error

	if doc.Title == "" {
		errs = append(errs, fmt.Errorf("title is required"))
	}
	if doc.Items == nil {
		errs = append(errs, fmt.Errorf("items is required and must be an array"))
	}

	for i, it := range doc.Items {
		prefix := fmt.Sprintf("items[%d]", i)

		if it.Status != "" && !domain.ValidStatuses[it.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, it.Status))
		}
		if it.DueDate != nil && *it.DueDate != "" {
			if _, err := time.Parse("2006-01-02", *it.DueDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.dueDate: invalid date format %q (expected YYYY-MM-DD)", prefix, *it.DueDate))
			}
		}
		for j, l := range it.Links {
			if l.URL == "" {
				errs = append(errs, fmt.Errorf("%s.links[%d].url is required", prefix, j))
			}
		}
	}

	return errs
}

// ValidateAgainstSchema validates raw document bytes against the
// embedded JSON Schema. It reports the full location of the first
// violation, which makes it the stricter companion to
// ValidateDocument for the `wayfarer validate` command.
func ValidateAgainstSchema(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := docSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrFormat, schemaErrorMessage(err))
	}
	return nil
}

// schemaErrorMessage flattens a jsonschema ValidationError into a
// single human-readable line.
func schemaErrorMessage(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	// Walk to the deepest cause; the root error just says "doesn't validate".
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := strings.TrimPrefix(ve.InstanceLocation, "/")
	if loc == "" {
		loc = "document"
	}
	return fmt.Sprintf("%s: %s", strings.ReplaceAll(loc, "/", "."), ve.Message)
}
