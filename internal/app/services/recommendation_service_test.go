package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmshub/lms-backend/internal/app/models"
	"github.com/lmshub/lms-backend/internal/pkg/apperrors"
)

func TestGetRecommendationsExcludesEnrolledAndUnpublished(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)
	insertCourse(t, st, "sql-course", "SQL Course", "sql", true)
	insertCourse(t, st, "draft", "Draft Course", "go", false)
	insertEnrollment(t, st, "user-1", "go-basics", 50)

	svc := NewRecommendationService(repos.Enrollments, repos.Courses, 10, 5, zerolog.Nop())
	recommendations, err := svc.GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, recommendations, 1)
	assert.Equal(t, "sql-course", recommendations[0].Name)
}

func TestGetRecommendationsScoring(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "tagged", "Tagged Course", "go,backend", true)
	insertCourse(t, st, "untagged", "Untagged Course", "", true)

	svc := NewRecommendationService(repos.Enrollments, repos.Courses, 10, 5, zerolog.Nop())
	recommendations, err := svc.GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, recommendations, 2)
	// Tagged courses score higher and sort first.
	assert.Equal(t, "tagged", recommendations[0].Name)
	assert.Equal(t, 70, recommendations[0].Score)
	assert.Equal(t, "untagged", recommendations[1].Name)
	assert.Equal(t, 50, recommendations[1].Score)
	for _, rec := range recommendations {
		assert.Equal(t, "Popular in your field", rec.Reason)
	}
}

func TestGetRecommendationsStableOrderOnTies(t *testing.T) {
	st, repos := newTestRepos(t)
	for i := 0; i < 4; i++ {
		name := fmt.Sprintf("course-%d", i)
		insertCourse(t, st, name, "Course "+name, "go", true)
	}

	svc := NewRecommendationService(repos.Enrollments, repos.Courses, 10, 5, zerolog.Nop())
	recommendations, err := svc.GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	// All scores tie, so store order is preserved.
	require.Len(t, recommendations, 4)
	for i, rec := range recommendations {
		assert.Equal(t, fmt.Sprintf("course-%d", i), rec.Name)
	}
}

func TestGetRecommendationsTruncatesToMaxResults(t *testing.T) {
	st, repos := newTestRepos(t)
	for i := 0; i < 8; i++ {
		insertCourse(t, st, fmt.Sprintf("course-%d", i), "Course", "go", true)
	}

	svc := NewRecommendationService(repos.Enrollments, repos.Courses, 10, 5, zerolog.Nop())
	recommendations, err := svc.GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, recommendations, 5)
}

func TestGetRecommendationsHonorsCandidatePoolSize(t *testing.T) {
	st, repos := newTestRepos(t)
	for i := 0; i < 8; i++ {
		insertCourse(t, st, fmt.Sprintf("course-%d", i), "Course", "go", true)
	}

	svc := NewRecommendationService(repos.Enrollments, repos.Courses, 3, 5, zerolog.Nop())
	recommendations, err := svc.GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)

	// Fewer candidates than max results returns them all.
	assert.Len(t, recommendations, 3)
}

func TestGetRecommendationsEmptyPool(t *testing.T) {
	st, repos := newTestRepos(t)
	insertCourse(t, st, "go-basics", "Go Basics", "go", true)
	insertEnrollment(t, st, "user-1", "go-basics", 10)

	svc := NewRecommendationService(repos.Enrollments, repos.Courses, 10, 5, zerolog.Nop())
	recommendations, err := svc.GetRecommendations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, recommendations)
}

func TestGetRecommendationsEmptyMember(t *testing.T) {
	_, repos := newTestRepos(t)
	svc := NewRecommendationService(repos.Enrollments, repos.Courses, 10, 5, zerolog.Nop())

	_, err := svc.GetRecommendations(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestScoreCourse(t *testing.T) {
	score, reason := scoreCourse(models.Course{Tags: []string{"go"}}, nil)
	assert.Equal(t, 70, score)
	assert.Equal(t, "Popular in your field", reason)

	score, reason = scoreCourse(models.Course{}, []string{"go-basics"})
	assert.Equal(t, 50, score)
	assert.Equal(t, "Popular in your field", reason)
}
