package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomain_FillsDefaults(t *testing.T) {
	doc, err := Parse([]byte(`{"title":"T","items":[{"id":"x"}]}`))
	require.NoError(t, err)

	r := ToDomain(doc)
	require.Len(t, r.Items, 1)
	assert.Equal(t, domain.StatusNotStarted, r.Items[0].Status)
	assert.Equal(t, "", r.Items[0].UserNotes)
	assert.Nil(t, r.Items[0].DueDate)
}

func TestToDomain_AssignsIDWhenMissing(t *testing.T) {
	doc, err := Parse([]byte(`{"title":"T","items":[{"title":"no id"},{"id":"keep-me"}]}`))
	require.NoError(t, err)

	r := ToDomain(doc)
	require.Len(t, r.Items, 2)

	_, parseErr := uuid.Parse(r.Items[0].ID)
	assert.NoError(t, parseErr, "missing id should be replaced by a generated one")
	assert.Equal(t, "keep-me", r.Items[1].ID, "existing ids are never regenerated")
}

func TestToDomain_ParsesFields(t *testing.T) {
	doc, err := Parse([]byte(`{
		"title": "Go Roadmap",
		"description": "desc",
		"items": [{
			"id": "x",
			"title": "Concurrency",
			"description": "goroutines and channels",
			"links": [{"title": "tour", "url": "https://go.dev/tour"}],
			"status": "in-progress",
			"userNotes": "halfway",
			"dueDate": "2026-09-01"
		}]
	}`))
	require.NoError(t, err)

	r := ToDomain(doc)
	assert.Equal(t, "Go Roadmap", r.Title)
	assert.Equal(t, "desc", r.Description)

	it := r.Items[0]
	assert.Equal(t, domain.StatusInProgress, it.Status)
	assert.Equal(t, "halfway", it.UserNotes)
	require.Len(t, it.Links, 1)
	assert.Equal(t, "https://go.dev/tour", it.Links[0].URL)
	require.NotNil(t, it.DueDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *it.DueDate)
}

func TestFromDomain_PopulatesAllFields(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	r := &domain.Roadmap{
		Title: "T",
		Items: []domain.Item{
			{ID: "a", Title: "one", Status: domain.StatusCompleted, UserNotes: "n", DueDate: &due},
			{ID: "b", Title: "two", Status: domain.StatusNotStarted},
		},
	}

	doc := FromDomain(r)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "completed", doc.Items[0].Status)
	require.NotNil(t, doc.Items[0].DueDate)
	assert.Equal(t, "2026-09-01", *doc.Items[0].DueDate)
	assert.Equal(t, "not-started", doc.Items[1].Status)
	assert.Nil(t, doc.Items[1].DueDate)
}

func TestConvert_RoundTrip(t *testing.T) {
	doc, err := Parse([]byte(`{"title":"T","items":[{"id":"x","title":"one","status":"completed","userNotes":"done","dueDate":"2026-01-15"}]}`))
	require.NoError(t, err)

	r := ToDomain(doc)
	back := ToDomain(FromDomain(r))
	assert.Equal(t, r, back)
}
