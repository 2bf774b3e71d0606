package importer

import (
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/google/uuid"
)

// ToDomain transforms a validated DocumentSchema into a domain roadmap,
// normalizing every item: status defaults to not-started, userNotes to
// the empty string, dueDate to unset. An item missing an id is assigned
// a generated one so it stays reachable by navigation; existing ids are
// never touched. Call ValidateDocument first; ToDomain assumes the
// schema is valid.
func ToDomain(doc *DocumentSchema) *domain.Roadmap {
	items := make([]domain.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}

		status := domain.Status(it.Status)
		if it.Status == "" {
			status = domain.StatusNotStarted
		}

		var links []domain.Link
		for _, l := range it.Links {
			links = append(links, domain.Link{Title: l.Title, URL: l.URL})
		}

		items = append(items, domain.Item{
			ID:          id,
			Title:       it.Title,
			Description: it.Description,
			Links:       links,
			Status:      status,
			UserNotes:   it.UserNotes,
			DueDate:     parseOptionalDate(it.DueDate),
		})
	}

	return &domain.Roadmap{
		Title:       doc.Title,
		Description: doc.Description,
		Items:       items,
	}
}

// FromDomain projects a roadmap back into its document shape, with all
// normalized fields populated. Exporting then re-importing the result
// yields an equivalent roadmap.
func FromDomain(r *domain.Roadmap) *DocumentSchema {
	items := make([]ItemSchema, 0, len(r.Items))
	for _, it := range r.Items {
		var links []LinkSchema
		for _, l := range it.Links {
			links = append(links, LinkSchema{Title: l.Title, URL: l.URL})
		}

		var due *string
		if it.DueDate != nil {
			s := it.DueDate.Format("2006-01-02")
			due = &s
		}

		items = append(items, ItemSchema{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Links:       links,
			Status:      string(it.Status),
			UserNotes:   it.UserNotes,
			DueDate:     due,
		})
	}

	return &DocumentSchema{
		Title:       r.Title,
		Description: r.Description,
		Items:       items,
	}
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
