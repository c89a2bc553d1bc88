package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmshub/lms-backend/internal/app/repositories"
	"github.com/lmshub/lms-backend/internal/pkg/apperrors"
	"github.com/lmshub/lms-backend/internal/store"
)

// countingStore wraps a Store and counts calls, so tests can assert an
// operation never reached the store at all.
type countingStore struct {
	store.Store
	queries int
}

func (c *countingStore) Query(ctx context.Context, entity string, q store.Query) ([]store.Record, error) {
	c.queries++
	return c.Store.Query(ctx, entity, q)
}

func TestSearchCoursesEmptyQuerySkipsStore(t *testing.T) {
	st, _ := newTestRepos(t)
	counting := &countingStore{Store: st}
	repos := repositories.NewRepositories(counting)

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	for _, query := range []string{"", "   ", "\t"} {
		results, err := svc.SearchCourses(context.Background(), query, SearchFilters{})
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
	assert.Zero(t, counting.queries)
}

func TestSearchCoursesMatchesTitleAndDescription(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)
	insertCourse(t, st, "sql-course", "SQL Course", "sql", true)
	// Matches on description only, not title.
	_, err := st.Insert(context.Background(), store.EntityCourse, store.Record{
		"name":               "backend",
		"title":              "Backend Engineering",
		"short_introduction": "Server development with Go and Postgres",
		"published":          true,
		"owner":              "instructor-1",
	})
	require.NoError(t, err)

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	results, err := svc.SearchCourses(context.Background(), "gO", SearchFilters{})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "go-basics", results[0].Name)
	assert.Equal(t, "backend", results[1].Name)
}

func TestSearchCoursesPublishedOnly(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)
	insertCourse(t, st, "go-draft", "Go Draft", "go", false)

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	results, err := svc.SearchCourses(context.Background(), "go", SearchFilters{})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "go-basics", results[0].Name)
}

func TestSearchCoursesOwnerFilter(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)
	_, err := st.Insert(context.Background(), store.EntityCourse, store.Record{
		"name":      "go-other",
		"title":     "Go for Others",
		"published": true,
		"owner":     "instructor-2",
	})
	require.NoError(t, err)

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	results, err := svc.SearchCourses(context.Background(), "go", SearchFilters{Owner: "instructor-2"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "go-other", results[0].Name)
}

func TestSearchCoursesCapsResults(t *testing.T) {
	st, repos := newTestRepos(t)
	for i := 0; i < 25; i++ {
		insertCourse(t, st, fmt.Sprintf("course-%02d", i), "Go Course", "go", true)
	}

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	results, err := svc.SearchCourses(context.Background(), "go", SearchFilters{})
	require.NoError(t, err)
	assert.Len(t, results, 20)
}

func TestEnrollCreatesEnrollment(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	result, err := svc.Enroll(context.Background(), "user-1", "go-basics")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Successfully enrolled in course", result.Message)
	assert.NotEmpty(t, result.EnrollmentID)

	record, err := st.Get(context.Background(), store.EntityEnrollment, result.EnrollmentID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", record.Str("member"))
	assert.Equal(t, "go-basics", record.Str("course"))
	assert.Equal(t, "Student", record.Str("member_type"))
}

func TestEnrollTwiceReportsAlreadyEnrolled(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	first, err := svc.Enroll(context.Background(), "user-1", "go-basics")
	require.NoError(t, err)
	require.True(t, first.Success)

	second, err := svc.Enroll(context.Background(), "user-1", "go-basics")
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "Already enrolled in this course", second.Message)
	assert.Empty(t, second.EnrollmentID)

	// Exactly one enrollment record exists for the pair.
	records, err := st.Query(context.Background(), store.EntityEnrollment, store.Query{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestEnrollSameCourseDifferentMembers(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)

	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())
	for _, member := range []string{"user-1", "user-2"} {
		result, err := svc.Enroll(context.Background(), member, "go-basics")
		require.NoError(t, err)
		assert.True(t, result.Success)
	}
}

func TestEnrollValidation(t *testing.T) {
	_, repos := newTestRepos(t)
	svc := NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop())

	_, err := svc.Enroll(context.Background(), "", "go-basics")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.Enroll(context.Background(), "user-1", "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
