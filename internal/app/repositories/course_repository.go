package repositories

import (
	"context"
	"strings"

	"github.com/lmshub/lms-backend/internal/app/models"
	"github.com/lmshub/lms-backend/internal/store"
)

// CourseRepository reads course records from the record store.
type CourseRepository struct {
	store store.Store
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(st store.Store) *CourseRepository {
	return &CourseRepository{store: st}
}

// GetByName retrieves a course by its identifier. Returns
// store.ErrNotFound when the course does not exist.
func (r *CourseRepository) GetByName(ctx context.Context, name string) (*models.Course, error) {
	record, err := r.store.Get(ctx, store.EntityCourse, name)
	if err != nil {
		return nil, err
	}
	course := courseFromRecord(record)
	return &course, nil
}

// ListPublishedExcluding returns up to limit published courses whose
// identifiers are not in the exclude set, in store order.
func (r *CourseRepository) ListPublishedExcluding(ctx context.Context, exclude []string, limit int) ([]models.Course, error) {
	q := store.Query{
		Filters: []store.Condition{
			store.Eq("published", true),
			store.NotIn("name", exclude),
		},
		Limit: limit,
	}
	records, err := r.store.Query(ctx, store.EntityCourse, q)
	if err != nil {
		return nil, err
	}
	return coursesFromRecords(records), nil
}

// Search returns up to limit published courses whose title or description
// contains the text (case-insensitive), further narrowed by the given
// equality conditions.
func (r *CourseRepository) Search(ctx context.Context, text string, filters []store.Condition, limit int) ([]models.Course, error) {
	q := store.Query{
		Filters: append([]store.Condition{store.Eq("published", true)}, filters...),
		OrFilters: []store.Condition{
			store.Like("title", text),
			store.Like("short_introduction", text),
		},
		Limit: limit,
	}
	records, err := r.store.Query(ctx, store.EntityCourse, q)
	if err != nil {
		return nil, err
	}
	return coursesFromRecords(records), nil
}

func coursesFromRecords(records []store.Record) []models.Course {
	courses := make([]models.Course, 0, len(records))
	for _, record := range records {
		courses = append(courses, courseFromRecord(record))
	}
	return courses
}

func courseFromRecord(record store.Record) models.Course {
	return models.Course{
		Name:              record.Str("name"),
		Title:             record.Str("title"),
		ShortIntroduction: record.Str("short_introduction"),
		Image:             record.Str("image"),
		Tags:              splitTags(record.Str("tags")),
		Published:         record.Bool("published"),
		Owner:             record.Str("owner"),
		CreatedAt:         record.Time("created_at"),
	}
}

// splitTags parses the comma-separated tags field; blanks are dropped so
// an untagged course yields a nil slice.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
