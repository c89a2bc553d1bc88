package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCourse(t *testing.T, s *MemoryStore, name, title string, published bool) {
	t.Helper()
	_, err := s.Insert(context.Background(), EntityCourse, Record{
		"name":      name,
		"title":     title,
		"published": published,
		"owner":     "instructor-1",
	})
	require.NoError(t, err)
}

func TestMemoryStoreQueryFilters(t *testing.T) {
	s := NewMemoryStore()
	seedCourse(t, s, "go-basics", "Go Basics", true)
	seedCourse(t, s, "rust-basics", "Rust Basics", true)
	seedCourse(t, s, "draft", "Draft Course", false)

	records, err := s.Query(context.Background(), EntityCourse, Query{
		Filters: []Condition{Eq("published", true)},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "go-basics", records[0].Str("name"))
	assert.Equal(t, "rust-basics", records[1].Str("name"))
}

func TestMemoryStoreQueryNotIn(t *testing.T) {
	s := NewMemoryStore()
	seedCourse(t, s, "a", "A", true)
	seedCourse(t, s, "b", "B", true)
	seedCourse(t, s, "c", "C", true)

	records, err := s.Query(context.Background(), EntityCourse, Query{
		Filters: []Condition{NotIn("name", []string{"a", "c"})},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].Str("name"))

	// An empty exclusion set excludes nothing.
	records, err = s.Query(context.Background(), EntityCourse, Query{
		Filters: []Condition{NotIn("name", nil)},
	})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestMemoryStoreQueryOrFiltersLike(t *testing.T) {
	s := NewMemoryStore()
	seedCourse(t, s, "go-basics", "Go Basics", true)
	seedCourse(t, s, "databases", "Databases", true)
	_, err := s.Insert(context.Background(), EntityCourse, Record{
		"name":               "intro",
		"title":              "Introduction",
		"short_introduction": "covers the basics of programming",
		"published":          true,
		"owner":              "instructor-1",
	})
	require.NoError(t, err)

	records, err := s.Query(context.Background(), EntityCourse, Query{
		OrFilters: []Condition{
			Like("title", "BASICS"),
			Like("short_introduction", "BASICS"),
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "go-basics", records[0].Str("name"))
	assert.Equal(t, "intro", records[1].Str("name"))
}

func TestMemoryStoreQueryOrderAndLimit(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, lesson := range []string{"first", "second", "third"} {
		_, err := s.Insert(context.Background(), EntityProgress, Record{
			"member":      "user-1",
			"lesson":      lesson,
			"status":      "Complete",
			"modified_at": base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	records, err := s.Query(context.Background(), EntityProgress, Query{
		Filters: []Condition{Eq("member", "user-1")},
		OrderBy: "modified_at",
		Desc:    true,
		Limit:   2,
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "third", records[0].Str("lesson"))
	assert.Equal(t, "second", records[1].Str("lesson"))
}

func TestMemoryStoreQueryProjection(t *testing.T) {
	s := NewMemoryStore()
	seedCourse(t, s, "go-basics", "Go Basics", true)

	records, err := s.Query(context.Background(), EntityCourse, Query{
		Fields: []string{"name"},
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "go-basics", records[0].Str("name"))
	assert.Empty(t, records[0].Str("title"))
}

func TestMemoryStoreQueryRejectsUnknownField(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Query(context.Background(), EntityCourse, Query{
		Filters: []Condition{Eq("price", 10)},
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Query(context.Background(), "Invoice", Query{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMemoryStoreGet(t *testing.T) {
	s := NewMemoryStore()
	seedCourse(t, s, "go-basics", "Go Basics", true)

	record, err := s.Get(context.Background(), EntityCourse, "go-basics")
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", record.Str("title"))

	_, err = s.Get(context.Background(), EntityCourse, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExists(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Insert(context.Background(), EntityEnrollment, Record{
		"member": "user-1",
		"course": "go-basics",
	})
	require.NoError(t, err)

	exists, err := s.Exists(context.Background(), EntityEnrollment, []Condition{
		Eq("member", "user-1"),
		Eq("course", "go-basics"),
	})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(context.Background(), EntityEnrollment, []Condition{
		Eq("member", "user-1"),
		Eq("course", "rust-basics"),
	})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryStoreInsert(t *testing.T) {
	s := NewMemoryStore()

	name, err := s.Insert(context.Background(), EntityEnrollment, Record{
		"member": "user-1",
		"course": "go-basics",
	})
	require.NoError(t, err)
	require.NotEmpty(t, name)

	record, err := s.Get(context.Background(), EntityEnrollment, name)
	require.NoError(t, err)
	assert.Equal(t, "user-1", record.Str("member"))
	assert.False(t, record.Time("created_at").IsZero())
}

func TestMemoryStoreInsertValidation(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Insert(context.Background(), EntityEnrollment, Record{
		"member": "user-1",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Insert(context.Background(), EntityEnrollment, Record{
		"member": "user-1",
		"course": "go-basics",
		"badge":  "gold",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMemoryStoreInsertCopiesInput(t *testing.T) {
	s := NewMemoryStore()
	fields := Record{
		"member": "user-1",
		"course": "go-basics",
	}
	_, err := s.Insert(context.Background(), EntityEnrollment, fields)
	require.NoError(t, err)

	// Mutating the caller's map after insert must not affect stored state.
	fields["course"] = "changed"
	records, err := s.Query(context.Background(), EntityEnrollment, Query{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "go-basics", records[0].Str("course"))
}
