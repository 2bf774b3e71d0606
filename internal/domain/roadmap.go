package domain

import (
	"math"
	"time"
)

// Link is a read-only reference attached to an item.
type Link struct {
	Title string
	URL   string
}

// Item is one trackable topic within a roadmap.
type Item struct {
	ID          string
	Title       string
	Description string
	Links       []Link
	Status      Status
	UserNotes   string
	DueDate     *time.Time
}

// Roadmap is the top-level document: a title plus ordered items.
// Item order is display order. Item IDs are assumed unique; on a
// duplicate, lookups return the first match and the second item is
// unreachable by direct navigation.
type Roadmap struct {
	Title       string
	Description string
	Items       []Item
}

// CompletedCount returns the number of items with StatusCompleted.
func (r *Roadmap) CompletedCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, it := range r.Items {
		if it.Status == StatusCompleted {
			n++
		}
	}
	return n
}

// Progress returns the completion percentage in [0,100], rounded
// half-up. A nil roadmap or one with zero items yields 0.
func (r *Roadmap) Progress() int {
	if r == nil || len(r.Items) == 0 {
		return 0
	}
	pct := 100 * float64(r.CompletedCount()) / float64(len(r.Items))
	return int(math.Round(pct))
}

// FindItem returns the first item whose ID matches, or false when no
// item matches or the roadmap is nil.
func (r *Roadmap) FindItem(id string) (Item, bool) {
	if r == nil {
		return Item{}, false
	}
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ItemUpdate is a partial update for a single item. Nil pointer fields
// are left alone; ClearDueDate removes the due date regardless of the
// DueDate field.
type ItemUpdate struct {
	Status       *Status
	DueDate      *time.Time
	ClearDueDate bool
	UserNotes    *string
}

// UpdateItem returns a new roadmap whose items are identical except
// that the first item matching id is replaced by the shallow merge of
// its previous fields and upd. The receiver is never modified: the
// items slice is re-allocated and untouched items keep their values.
// The boolean reports whether an item matched; when no item matches
// (or the roadmap is nil) the receiver is returned unchanged.
func (r *Roadmap) UpdateItem(id string, upd ItemUpdate) (*Roadmap, bool) {
	if r == nil {
		return nil, false
	}
	idx := -1
	for i, it := range r.Items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, false
	}

	items := make([]Item, len(r.Items))
	copy(items, r.Items)

	it := items[idx]
	if upd.Status != nil {
		it.Status = *upd.Status
	}
	if upd.ClearDueDate {
		it.DueDate = nil
	} else if upd.DueDate != nil {
		d := *upd.DueDate
		it.DueDate = &d
	}
	if upd.UserNotes != nil {
		it.UserNotes = *upd.UserNotes
	}
	items[idx] = it

	next := *r
	next.Items = items
	return &next, true
}
