package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store with the same semantics as the
// Postgres implementation. It exists so the aggregation, filtering and
// scoring logic can be tested without a live record store; it is not a
// cache and holds no state the production path depends on.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]Record
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]Record)}
}

// Query returns matching records in insertion order unless OrderBy is set.
func (s *MemoryStore) Query(_ context.Context, entity string, q Query) ([]Record, error) {
	schema, err := schemaFor(entity)
	if err != nil {
		return nil, err
	}
	if err := validateQuery(schema, entity, q); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []Record
	for _, record := range s.records[entity] {
		if matchesQuery(record, q) {
			matched = append(matched, record)
		}
	}

	if q.OrderBy != "" {
		field, desc := q.OrderBy, q.Desc
		sort.SliceStable(matched, func(i, j int) bool {
			less := lessValue(matched[i][field], matched[j][field])
			if desc {
				return lessValue(matched[j][field], matched[i][field])
			}
			return less
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	out := make([]Record, len(matched))
	for i, record := range matched {
		out[i] = project(record, q.Fields)
	}
	return out, nil
}

// Get fetches a record by identifier.
func (s *MemoryStore) Get(_ context.Context, entity, name string) (Record, error) {
	if _, err := schemaFor(entity); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records[entity] {
		if record.Str("name") == name {
			return project(record, nil), nil
		}
	}
	return nil, fmt.Errorf("%w: %s %q", ErrNotFound, entity, name)
}

// Exists reports whether any record matches all conditions.
func (s *MemoryStore) Exists(ctx context.Context, entity string, filters []Condition) (bool, error) {
	records, err := s.Query(ctx, entity, Query{Filters: filters, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(records) > 0, nil
}

// Insert creates a record, assigning an identifier and timestamps the way
// the Postgres store does.
func (s *MemoryStore) Insert(_ context.Context, entity string, fields Record) (string, error) {
	schema, err := schemaFor(entity)
	if err != nil {
		return "", err
	}
	if err := validateInsert(schema, entity, fields); err != nil {
		return "", err
	}

	record := make(Record, len(fields)+2)
	for k, v := range fields {
		record[k] = v
	}
	name := record.Str("name")
	if name == "" {
		name = uuid.NewString()
		record["name"] = name
	}
	now := time.Now().UTC()
	if schema.fields["created_at"] && record["created_at"] == nil {
		record["created_at"] = now
	}
	if schema.fields["modified_at"] && record["modified_at"] == nil {
		record["modified_at"] = now
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[entity] = append(s.records[entity], record)
	return name, nil
}

func matchesQuery(record Record, q Query) bool {
	for _, cond := range q.Filters {
		if !matchesCondition(record, cond) {
			return false
		}
	}
	if len(q.OrFilters) > 0 {
		any := false
		for _, cond := range q.OrFilters {
			if matchesCondition(record, cond) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

func matchesCondition(record Record, cond Condition) bool {
	switch cond.Op {
	case OpEq:
		return equalValue(record[cond.Field], cond.Value)
	case OpIn:
		values, _ := cond.Value.([]string)
		for _, v := range values {
			if record.Str(cond.Field) == v {
				return true
			}
		}
		return false
	case OpNotIn:
		values, _ := cond.Value.([]string)
		for _, v := range values {
			if record.Str(cond.Field) == v {
				return false
			}
		}
		return true
	case OpLike:
		substr, _ := cond.Value.(string)
		return strings.Contains(strings.ToLower(record.Str(cond.Field)), strings.ToLower(substr))
	}
	return false
}

func equalValue(a, b interface{}) bool {
	// Numeric fields may arrive as int or float depending on the caller.
	switch b.(type) {
	case int, int64, float32, float64:
		return Record{"v": a}.Float("v") == Record{"v": b}.Float("v")
	}
	return a == b
}

func lessValue(a, b interface{}) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return av < bv
	case time.Time:
		bv, _ := b.(time.Time)
		return av.Before(bv)
	default:
		return Record{"v": a}.Float("v") < Record{"v": b}.Float("v")
	}
}

// project copies a record, keeping only the requested fields (all fields
// when none are requested). Copies keep callers from mutating stored state.
func project(record Record, fields []string) Record {
	if len(fields) == 0 {
		out := make(Record, len(record))
		for k, v := range record {
			out[k] = v
		}
		return out
	}
	out := make(Record, len(fields))
	for _, f := range fields {
		if v, ok := record[f]; ok {
			out[f] = v
		}
	}
	return out
}
