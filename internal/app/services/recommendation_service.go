package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lmshub/lms-backend/internal/app/models"
	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/repositories"
	"github.com/lmshub/lms-backend/internal/pkg/apperrors"
)

// baseScore is the score every candidate starts from.
const baseScore = 50

// tagBoost is added when a course carries any tags. The member's own
// enrollment tags are not consulted yet; this is a flat placeholder
// signal, kept deliberately until a real relevance model replaces it.
const tagBoost = 20

// recommendationReasons is the fixed justification list. Selection is a
// placeholder: every candidate currently gets the first entry.
var recommendationReasons = []string{
	"Popular in your field",
	"Complements your current courses",
	"Trending this week",
	"Recommended by instructors",
}

// RecommendationService defines the course recommendation operation.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, member string) ([]dto.RecommendedCourse, error)
}

// recommendationServiceImpl scores and ranks not-yet-enrolled published
// courses for a member. The pipeline is candidate filter, then scorer,
// then ranker; each stage consumes the previous stage's full output.
type recommendationServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	poolSize       int
	maxResults     int
	logger         zerolog.Logger
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(
	enrollmentRepo *repositories.EnrollmentRepository,
	courseRepo *repositories.CourseRepository,
	poolSize int,
	maxResults int,
	logger zerolog.Logger,
) RecommendationService {
	return &recommendationServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		poolSize:       poolSize,
		maxResults:     maxResults,
		logger:         logger,
	}
}

// GetRecommendations returns the top-K scored candidates for a member.
// Candidates are the first poolSize published courses, in store order,
// that the member is not enrolled in; recommendations are drawn from
// that sample, not from the globally optimal set. Fewer candidates than
// K returns all of them; zero candidates returns an empty list.
func (s *recommendationServiceImpl) GetRecommendations(ctx context.Context, member string) ([]dto.RecommendedCourse, error) {
	if member == "" {
		return nil, apperrors.NewValidationError("member is required")
	}

	enrolled, err := s.enrollmentRepo.CourseNamesByMember(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}

	candidates, err := s.courseRepo.ListPublishedExcluding(ctx, enrolled, s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate courses: %w", err)
	}

	recommendations := make([]dto.RecommendedCourse, 0, len(candidates))
	for _, course := range candidates {
		score, reason := scoreCourse(course, enrolled)
		recommendations = append(recommendations, dto.RecommendedCourse{
			Name:        course.Name,
			Title:       course.Title,
			Description: course.ShortIntroduction,
			Image:       course.Image,
			Tags:        course.Tags,
			Score:       score,
			Reason:      reason,
		})
	}

	// Stable sort: equal scores keep the store's candidate order.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > s.maxResults {
		recommendations = recommendations[:s.maxResults]
	}
	return recommendations, nil
}

// scoreCourse assigns a score and a justification to one candidate.
// Pure function: no I/O, no state. The enrolled set is accepted for the
// future relevance model but not consulted by the current rule.
func scoreCourse(course models.Course, enrolled []string) (int, string) {
	score := baseScore
	if len(course.Tags) > 0 {
		score += tagBoost
	}
	return score, recommendationReasons[0]
}
