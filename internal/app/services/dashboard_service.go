package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lmshub/lms-backend/internal/app/models/dto"
	"github.com/lmshub/lms-backend/internal/app/repositories"
	"github.com/lmshub/lms-backend/internal/pkg/apperrors"
	"github.com/lmshub/lms-backend/internal/store"
)

// DashboardService defines the dashboard aggregation operation.
type DashboardService interface {
	GetDashboard(ctx context.Context, member string) (*dto.DashboardResponse, error)
}

// dashboardServiceImpl joins a member's enrollments with course details
// and the recent progress feed into one derived view. Read-only: nothing
// here mutates the store, and every response is computed fresh per call.
type dashboardServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	courseRepo     *repositories.CourseRepository
	progressRepo   *repositories.ProgressRepository
	recentLimit    int
	logger         zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	enrollmentRepo *repositories.EnrollmentRepository,
	courseRepo *repositories.CourseRepository,
	progressRepo *repositories.ProgressRepository,
	recentLimit int,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		progressRepo:   progressRepo,
		recentLimit:    recentLimit,
		logger:         logger,
	}
}

// GetDashboard aggregates the member's enrollments into a dashboard view.
// An enrollment whose course record is missing is a store inconsistency:
// the entry is skipped so the rest of the dashboard still renders, and
// statistics count only the courses actually returned.
func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, member string) (*dto.DashboardResponse, error) {
	if member == "" {
		return nil, apperrors.NewValidationError("member is required")
	}

	enrollments, err := s.enrollmentRepo.ListByMember(ctx, member)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	courses := make([]dto.EnrolledCourse, 0, len(enrollments))
	completed := 0
	for _, enrollment := range enrollments {
		course, err := s.courseRepo.GetByName(ctx, enrollment.Course)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				s.logger.Warn().
					Str("member", member).
					Str("course", enrollment.Course).
					Msg("Enrollment references missing course, skipping")
				continue
			}
			return nil, fmt.Errorf("error retrieving course %q: %w", enrollment.Course, err)
		}

		courses = append(courses, dto.EnrolledCourse{
			Name:          course.Name,
			Title:         course.Title,
			Description:   course.ShortIntroduction,
			Image:         course.Image,
			Progress:      enrollment.Progress,
			CurrentLesson: enrollment.CurrentLesson,
			EnrolledAt:    enrollment.CreatedAt,
			Instructor:    course.Owner,
		})
		if enrollment.Completed() {
			completed++
		}
	}

	recent, err := s.progressRepo.RecentByMember(ctx, member, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent progress: %w", err)
	}

	activity := make([]dto.ActivityEntry, 0, len(recent))
	for _, record := range recent {
		activity = append(activity, dto.ActivityEntry{
			Lesson:     record.Lesson,
			Status:     record.Status,
			TimeSpent:  record.TimeSpent,
			ModifiedAt: record.ModifiedAt,
		})
	}

	return &dto.DashboardResponse{
		User: member,
		Statistics: dto.DashboardStatistics{
			TotalCourses: len(courses),
			Completed:    completed,
			InProgress:   len(courses) - completed,
		},
		Courses:        courses,
		RecentActivity: activity,
	}, nil
}
