package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmshub/lms-backend/internal/app/repositories"
	"github.com/lmshub/lms-backend/internal/pkg/apperrors"
	"github.com/lmshub/lms-backend/internal/store"
)

func newTestRepos(t *testing.T) (*store.MemoryStore, *repositories.Repositories) {
	t.Helper()
	st := store.NewMemoryStore()
	return st, repositories.NewRepositories(st)
}

func insertCourse(t *testing.T, st *store.MemoryStore, name, title, tags string, published bool) {
	t.Helper()
	_, err := st.Insert(context.Background(), store.EntityCourse, store.Record{
		"name":               name,
		"title":              title,
		"short_introduction": title + " description",
		"tags":               tags,
		"published":          published,
		"owner":              "instructor-1",
	})
	require.NoError(t, err)
}

func insertEnrollment(t *testing.T, st *store.MemoryStore, member, course string, progress float64) {
	t.Helper()
	_, err := st.Insert(context.Background(), store.EntityEnrollment, store.Record{
		"member":      member,
		"course":      course,
		"member_type": "Student",
		"progress":    progress,
	})
	require.NoError(t, err)
}

func insertProgress(t *testing.T, st *store.MemoryStore, member, lesson string, modifiedAt time.Time) {
	t.Helper()
	_, err := st.Insert(context.Background(), store.EntityProgress, store.Record{
		"member":      member,
		"course":      "go-basics",
		"lesson":      lesson,
		"status":      "Complete",
		"time_spent":  120.0,
		"modified_at": modifiedAt,
	})
	require.NoError(t, err)
}

func TestGetDashboardAggregatesEnrollments(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go,backend", true)
	insertCourse(t, st, "sql-course", "SQL Course", "sql", true)
	insertEnrollment(t, st, "user-1", "go-basics", 100)
	insertEnrollment(t, st, "user-1", "sql-course", 40)
	insertEnrollment(t, st, "user-2", "go-basics", 10)

	svc := NewDashboardService(repos.Enrollments, repos.Courses, repos.Progress, 5, zerolog.Nop())
	dashboard, err := svc.GetDashboard(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", dashboard.User)
	require.Len(t, dashboard.Courses, 2)
	assert.Equal(t, "Go Basics", dashboard.Courses[0].Title)
	assert.Equal(t, "instructor-1", dashboard.Courses[0].Instructor)
	assert.Equal(t, 100.0, dashboard.Courses[0].Progress)

	assert.Equal(t, 2, dashboard.Statistics.TotalCourses)
	assert.Equal(t, 1, dashboard.Statistics.Completed)
	assert.Equal(t, 1, dashboard.Statistics.InProgress)
}

func TestGetDashboardStatisticsSumToTotal(t *testing.T) {
	st, repos := newTestRepos(t)
	for i, progress := range []float64{0, 25, 99.9, 100, 100} {
		name := string(rune('a' + i))
		insertCourse(t, st, name, "Course "+name, "", true)
		insertEnrollment(t, st, "user-1", name, progress)
	}

	svc := NewDashboardService(repos.Enrollments, repos.Courses, repos.Progress, 5, zerolog.Nop())
	dashboard, err := svc.GetDashboard(context.Background(), "user-1")
	require.NoError(t, err)

	stats := dashboard.Statistics
	assert.Equal(t, 5, stats.TotalCourses)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, stats.TotalCourses, stats.Completed+stats.InProgress)
}

func TestGetDashboardSkipsDanglingEnrollment(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "", true)
	insertEnrollment(t, st, "user-1", "go-basics", 100)
	insertEnrollment(t, st, "user-1", "deleted-course", 100)

	svc := NewDashboardService(repos.Enrollments, repos.Courses, repos.Progress, 5, zerolog.Nop())
	dashboard, err := svc.GetDashboard(context.Background(), "user-1")
	require.NoError(t, err)

	// The enrollment pointing at a missing course is dropped and the
	// statistics count only what was rendered.
	require.Len(t, dashboard.Courses, 1)
	assert.Equal(t, 1, dashboard.Statistics.TotalCourses)
	assert.Equal(t, 1, dashboard.Statistics.Completed)
}

func TestGetDashboardRecentActivity(t *testing.T) {
	st, repos := newTestRepos(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		insertProgress(t, st, "user-1", "lesson-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
	}
	insertProgress(t, st, "user-2", "other-lesson", base.Add(48*time.Hour))

	svc := NewDashboardService(repos.Enrollments, repos.Courses, repos.Progress, 5, zerolog.Nop())
	dashboard, err := svc.GetDashboard(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, dashboard.RecentActivity, 5)
	assert.Equal(t, "lesson-g", dashboard.RecentActivity[0].Lesson)
	for i := 1; i < len(dashboard.RecentActivity); i++ {
		prev := dashboard.RecentActivity[i-1].ModifiedAt
		assert.False(t, dashboard.RecentActivity[i].ModifiedAt.After(prev))
	}
}

func TestGetDashboardEmptyMember(t *testing.T) {
	_, repos := newTestRepos(t)
	svc := NewDashboardService(repos.Enrollments, repos.Courses, repos.Progress, 5, zerolog.Nop())

	_, err := svc.GetDashboard(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetDashboardNoEnrollments(t *testing.T) {
	_, repos := newTestRepos(t)
	svc := NewDashboardService(repos.Enrollments, repos.Courses, repos.Progress, 5, zerolog.Nop())

	dashboard, err := svc.GetDashboard(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Empty(t, dashboard.Courses)
	assert.Empty(t, dashboard.RecentActivity)
	assert.Equal(t, 0, dashboard.Statistics.TotalCourses)
	assert.Equal(t, 0, dashboard.Statistics.Completed)
	assert.Equal(t, 0, dashboard.Statistics.InProgress)
}
