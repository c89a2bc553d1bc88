package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Store errors
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("record validation failed")
)

// Entity type names understood by the record store.
const (
	EntityUser       = "User"
	EntityCourse     = "Course"
	EntityEnrollment = "Enrollment"
	EntityProgress   = "Course Progress"
)

// Operator is a comparison operator usable in a query condition.
type Operator string

const (
	OpEq    Operator = "="
	OpIn    Operator = "in"
	OpNotIn Operator = "not in"
	// OpLike matches records whose field contains the condition value as a
	// case-insensitive substring. The value is a plain substring, not a
	// pattern; implementations add their own wildcards.
	OpLike Operator = "like"
)

// Condition is a single typed predicate on a record field. Conditions are
// built at the request boundary and validated against the entity schema
// before any query runs; free-form filter payloads never reach the store.
type Condition struct {
	Field string
	Op    Operator
	Value interface{}
}

// Eq builds an equality condition.
func Eq(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

// NotIn builds a set-exclusion condition over string identifiers.
func NotIn(field string, values []string) Condition {
	return Condition{Field: field, Op: OpNotIn, Value: values}
}

// Like builds a case-insensitive substring condition.
func Like(field, substring string) Condition {
	return Condition{Field: field, Op: OpLike, Value: substring}
}

// Query describes a bounded read against one entity type.
// Filters are conjoined; OrFilters form a single disjunction group that is
// conjoined against Filters (used for text search across several fields).
type Query struct {
	Filters   []Condition
	OrFilters []Condition
	Fields    []string
	OrderBy   string
	Desc      bool
	Limit     int
}

// Record is one document read from or written to the store. Values are
// scalars: string, bool, float64, int64 or time.Time.
type Record map[string]interface{}

// Str returns a string field, or "" when absent or of another type.
func (r Record) Str(field string) string {
	s, _ := r[field].(string)
	return s
}

// Float returns a numeric field as float64, defaulting to 0. Integer
// values are widened so callers don't care which numeric type the backing
// store produced.
func (r Record) Float(field string) float64 {
	switch v := r[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

// Bool returns a boolean field, defaulting to false.
func (r Record) Bool(field string) bool {
	b, _ := r[field].(bool)
	return b
}

// Time returns a timestamp field, or the zero time when absent.
func (r Record) Time(field string) time.Time {
	t, _ := r[field].(time.Time)
	return t
}

// Store is the narrow record-accessor capability the core depends on.
// All durable state (users, courses, enrollments, progress) is owned by
// the external record store behind this interface; the core only reads
// and occasionally inserts through it. Implementations must surface
// ErrNotFound from Get and ErrValidation from malformed inserts; any
// other failure propagates to the caller unchanged.
type Store interface {
	// Query returns an ordered, bounded sequence of records.
	Query(ctx context.Context, entity string, q Query) ([]Record, error)
	// Get fetches one record by its identifier.
	Get(ctx context.Context, entity, name string) (Record, error)
	// Exists reports whether any record matches all the given conditions.
	Exists(ctx context.Context, entity string, filters []Condition) (bool, error)
	// Insert creates a record and returns its assigned identifier.
	Insert(ctx context.Context, entity string, fields Record) (string, error)
}

// entitySchema describes one entity type: its backing table and the set
// of fields a query or insert may reference. Every entity is identified
// by its "name" field.
type entitySchema struct {
	table    string
	fields   map[string]bool
	required []string
}

var schemas = map[string]entitySchema{
	EntityUser: {
		table:    "users",
		fields:   fieldSet("name", "email", "full_name", "created_at"),
		required: []string{"email", "full_name"},
	},
	EntityCourse: {
		table:    "courses",
		fields:   fieldSet("name", "title", "short_introduction", "image", "tags", "published", "owner", "created_at"),
		required: []string{"title", "owner"},
	},
	EntityEnrollment: {
		table:    "enrollments",
		fields:   fieldSet("name", "member", "course", "member_type", "progress", "current_lesson", "created_at"),
		required: []string{"member", "course"},
	},
	EntityProgress: {
		table:    "course_progress",
		fields:   fieldSet("name", "member", "course", "lesson", "status", "time_spent", "modified_at"),
		required: []string{"member", "lesson", "status"},
	},
}

func fieldSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// schemaFor resolves the schema for an entity type.
func schemaFor(entity string) (entitySchema, error) {
	schema, ok := schemas[entity]
	if !ok {
		return entitySchema{}, fmt.Errorf("%w: unknown entity type %q", ErrValidation, entity)
	}
	return schema, nil
}

// validateQuery checks every field a query references against the schema.
func validateQuery(schema entitySchema, entity string, q Query) error {
	for _, cond := range append(append([]Condition{}, q.Filters...), q.OrFilters...) {
		if !schema.fields[cond.Field] {
			return fmt.Errorf("%w: unknown field %q on %s", ErrValidation, cond.Field, entity)
		}
	}
	for _, f := range q.Fields {
		if !schema.fields[f] {
			return fmt.Errorf("%w: unknown field %q on %s", ErrValidation, f, entity)
		}
	}
	if q.OrderBy != "" && !schema.fields[q.OrderBy] {
		return fmt.Errorf("%w: unknown order field %q on %s", ErrValidation, q.OrderBy, entity)
	}
	return nil
}

// validateInsert checks field names and required fields for an insert.
func validateInsert(schema entitySchema, entity string, fields Record) error {
	for f := range fields {
		if !schema.fields[f] {
			return fmt.Errorf("%w: unknown field %q on %s", ErrValidation, f, entity)
		}
	}
	for _, req := range schema.required {
		if v, ok := fields[req]; !ok || v == "" {
			return fmt.Errorf("%w: missing required field %q on %s", ErrValidation, req, entity)
		}
	}
	return nil
}
