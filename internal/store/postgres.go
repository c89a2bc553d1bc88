package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// PostgresStore implements Store on top of a pgx connection pool. Each
// entity type maps to one table; the schema map in store.go whitelists
// the columns a caller may reference, so condition fields are interpolated
// into SQL only after validation and all values travel as bind parameters.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a Postgres-backed record store.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

// Query returns records matching q, in store order unless OrderBy is set.
func (s *PostgresStore) Query(ctx context.Context, entity string, q Query) ([]Record, error) {
	schema, err := schemaFor(entity)
	if err != nil {
		return nil, err
	}
	if err := validateQuery(schema, entity, q); err != nil {
		return nil, err
	}

	columns := q.Fields
	if len(columns) == 0 {
		columns = schema.columnList()
	}

	var sb strings.Builder
	var args []interface{}
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(schema.table)

	where := buildWhere(q, &args)
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	if q.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.OrderBy)
		if q.Desc {
			sb.WriteString(" DESC")
		}
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := s.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s records: %w", entity, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows, columns)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s records: %w", entity, err)
	}

	return records, nil
}

// Get fetches a single record by identifier.
func (s *PostgresStore) Get(ctx context.Context, entity, name string) (Record, error) {
	schema, err := schemaFor(entity)
	if err != nil {
		return nil, err
	}

	columns := schema.columnList()
	query := fmt.Sprintf("SELECT %s FROM %s WHERE name = $1", strings.Join(columns, ", "), schema.table)

	rows, err := s.pool.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s record: %w", entity, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error retrieving %s record: %w", entity, err)
		}
		return nil, fmt.Errorf("%w: %s %q", ErrNotFound, entity, name)
	}
	return scanRecord(rows, columns)
}

// Exists reports whether a record matches all given conditions.
func (s *PostgresStore) Exists(ctx context.Context, entity string, filters []Condition) (bool, error) {
	schema, err := schemaFor(entity)
	if err != nil {
		return false, err
	}
	if err := validateQuery(schema, entity, Query{Filters: filters}); err != nil {
		return false, err
	}

	var args []interface{}
	where := buildWhere(Query{Filters: filters}, &args)
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s", schema.table)
	if where != "" {
		query += " WHERE " + where
	}
	query += ")"

	var exists bool
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking %s existence: %w", entity, err)
	}
	return exists, nil
}

// Insert creates a record and returns its identifier. A "name" field is
// generated when the caller does not supply one; created_at and
// modified_at columns are stamped when the entity has them.
func (s *PostgresStore) Insert(ctx context.Context, entity string, fields Record) (string, error) {
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

	columns := make([]string, 0, len(record))
	placeholders := make([]string, 0, len(record))
	args := make([]interface{}, 0, len(record))
	for col, val := range record {
		columns = append(columns, col)
		args = append(args, val)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		schema.table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		s.logger.Error().Err(err).Str("entity", entity).Msg("Record insert failed")
		return "", fmt.Errorf("error inserting %s record: %w", entity, err)
	}
	return name, nil
}

// buildWhere renders the AND filter list and the OR group into one WHERE
// clause body, appending bind values to args.
func buildWhere(q Query, args *[]interface{}) string {
	var parts []string
	for _, cond := range q.Filters {
		if clause := renderCondition(cond, args); clause != "" {
			parts = append(parts, clause)
		}
	}
	if len(q.OrFilters) > 0 {
		var orParts []string
		for _, cond := range q.OrFilters {
			if clause := renderCondition(cond, args); clause != "" {
				orParts = append(orParts, clause)
			}
		}
		if len(orParts) > 0 {
			parts = append(parts, "("+strings.Join(orParts, " OR ")+")")
		}
	}
	return strings.Join(parts, " AND ")
}

// renderCondition renders one condition to SQL. Empty IN lists can never
// match and empty NOT IN lists exclude nothing, so both collapse without
// touching the database.
func renderCondition(cond Condition, args *[]interface{}) string {
	switch cond.Op {
	case OpEq:
		*args = append(*args, cond.Value)
		return fmt.Sprintf("%s = $%d", cond.Field, len(*args))
	case OpIn:
		values, _ := cond.Value.([]string)
		if len(values) == 0 {
			return "FALSE"
		}
		*args = append(*args, values)
		return fmt.Sprintf("%s = ANY($%d)", cond.Field, len(*args))
	case OpNotIn:
		values, _ := cond.Value.([]string)
		if len(values) == 0 {
			return ""
		}
		*args = append(*args, values)
		return fmt.Sprintf("%s <> ALL($%d)", cond.Field, len(*args))
	case OpLike:
		*args = append(*args, cond.Value)
		return fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", cond.Field, len(*args))
	}
	return ""
}

// scanRecord converts the current row into a Record keyed by column name.
func scanRecord(rows pgx.Rows, columns []string) (Record, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, fmt.Errorf("error scanning record: %w", err)
	}
	if len(values) != len(columns) {
		return nil, errors.New("error scanning record: column count mismatch")
	}
	record := make(Record, len(columns))
	for i, col := range columns {
		record[col] = values[i]
	}
	return record, nil
}

// columnList returns the schema's fields in a stable order for SELECTs.
func (s entitySchema) columnList() []string {
	columns := make([]string, 0, len(s.fields))
	for f := range s.fields {
		columns = append(columns, f)
	}
	// Map iteration order is random; keep SELECT lists deterministic.
	sort.Strings(columns)
	return columns
}
