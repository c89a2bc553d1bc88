package repositories

import (
	"context"

	"github.com/lmshub/lms-backend/internal/app/models"
	"github.com/lmshub/lms-backend/internal/store"
)

// EnrollmentRepository reads and creates enrollment records.
type EnrollmentRepository struct {
	store store.Store
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(st store.Store) *EnrollmentRepository {
	return &EnrollmentRepository{store: st}
}

// ListByMember returns all enrollments of one member, in store order.
func (r *EnrollmentRepository) ListByMember(ctx context.Context, member string) ([]models.Enrollment, error) {
	records, err := r.store.Query(ctx, store.EntityEnrollment, store.Query{
		Filters: []store.Condition{store.Eq("member", member)},
	})
	if err != nil {
		return nil, err
	}

	enrollments := make([]models.Enrollment, 0, len(records))
	for _, record := range records {
		enrollments = append(enrollments, models.Enrollment{
			Name:          record.Str("name"),
			Member:        record.Str("member"),
			Course:        record.Str("course"),
			MemberType:    models.MemberType(record.Str("member_type")),
			Progress:      record.Float("progress"),
			CurrentLesson: record.Str("current_lesson"),
			CreatedAt:     record.Time("created_at"),
		})
	}
	return enrollments, nil
}

// CourseNamesByMember returns the identifiers of the courses a member is
// enrolled in. The per-pair uniqueness invariant means the result has no
// duplicates.
func (r *EnrollmentRepository) CourseNamesByMember(ctx context.Context, member string) ([]string, error) {
	records, err := r.store.Query(ctx, store.EntityEnrollment, store.Query{
		Filters: []store.Condition{store.Eq("member", member)},
		Fields:  []string{"course"},
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.Str("course"))
	}
	return names, nil
}

// Exists reports whether the member is already enrolled in the course.
func (r *EnrollmentRepository) Exists(ctx context.Context, member, course string) (bool, error) {
	return r.store.Exists(ctx, store.EntityEnrollment, []store.Condition{
		store.Eq("member", member),
		store.Eq("course", course),
	})
}

// Create inserts a new enrollment and returns its assigned identifier.
func (r *EnrollmentRepository) Create(ctx context.Context, member, course string) (string, error) {
	return r.store.Insert(ctx, store.EntityEnrollment, store.Record{
		"member":      member,
		"course":      course,
		"member_type": string(models.MemberTypeStudent),
	})
}
