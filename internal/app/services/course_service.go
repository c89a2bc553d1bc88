package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/repositories"
	"github.com/lmshub/lms-backend/internal/pkg/apperrors"
	"github.com/lmshub/lms-backend/internal/store"
)

// searchResultLimit caps the number of search hits returned.
const searchResultLimit = 20

// SearchFilters are the optional equality filters a caller may combine
// with the text query. They are parsed and validated at the request
// boundary; free-form filter payloads never reach this layer.
type SearchFilters struct {
	Owner string
	Tag   string
}

// CourseService defines course search and the enrollment write path.
type CourseService interface {
	SearchCourses(ctx context.Context, query string, filters SearchFilters) ([]dto.CourseSummary, error)
	Enroll(ctx context.Context, member, courseName string) (*dto.EnrollResult, error)
}

type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	logger         zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		logger:         logger,
	}
}

// SearchCourses finds published courses whose title or description
// contains the query text, case-insensitive, capped at 20 results. An
// empty query returns an empty result without touching the store.
func (s *courseServiceImpl) SearchCourses(ctx context.Context, query string, filters SearchFilters) ([]dto.CourseSummary, error) {
	if strings.TrimSpace(query) == "" {
		return []dto.CourseSummary{}, nil
	}

	var conditions []store.Condition
	if filters.Owner != "" {
		conditions = append(conditions, store.Eq("owner", filters.Owner))
	}
	if filters.Tag != "" {
		// Tags are stored comma-separated, so tag filtering is containment.
		conditions = append(conditions, store.Like("tags", filters.Tag))
	}

	courses, err := s.courseRepo.Search(ctx, query, conditions, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}

	summaries := make([]dto.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, dto.CourseSummary{
			Name:        course.Name,
			Title:       course.Title,
			Description: course.ShortIntroduction,
			Image:       course.Image,
			Owner:       course.Owner,
		})
	}
	return summaries, nil
}

// Enroll registers a member in a course unless an enrollment for the
// pair already exists. This is a check-then-insert sequence with no
// isolation beyond what the record store provides: two concurrent enroll
// calls for the same pair may both pass the existence check and both
// insert. The store does not promise uniqueness, so that race is a known
// limitation of this path rather than something to paper over here. The
// duplicate check also makes repeated calls with the same arguments
// idempotent in the sequential case.
func (s *courseServiceImpl) Enroll(ctx context.Context, member, courseName string) (*dto.EnrollResult, error) {
	if member == "" {
		return nil, apperrors.NewValidationError("member is required")
	}
	if strings.TrimSpace(courseName) == "" {
		return nil, apperrors.NewValidationError("course name is required")
	}

	exists, err := s.enrollmentRepo.Exists(ctx, member, courseName)
	if err != nil {
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}
	if exists {
		return &dto.EnrollResult{
			Success: false,
			Message: "Already enrolled in this course",
		}, nil
	}

	enrollmentID, err := s.enrollmentRepo.Create(ctx, member, courseName)
	if err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	s.logger.Info().
		Str("member", member).
		Str("course", courseName).
		Str("enrollment", enrollmentID).
		Msg("Member enrolled in course")

	return &dto.EnrollResult{
		Success:      true,
		Message:      "Successfully enrolled in course",
		EnrollmentID: enrollmentID,
	}, nil
}
