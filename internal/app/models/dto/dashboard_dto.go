package dto

import (
	"time"

	"github.com/lmshub/lms-backend/internal/app/models"
)

// DashboardStatistics are the derived enrollment counters. TotalCourses
// always equals Completed + InProgress.
type DashboardStatistics struct {
	TotalCourses int `json:"totalCourses"`
	Completed    int `json:"completed"`
	InProgress   int `json:"inProgress"`
}

// EnrolledCourse is one enrollment joined with its course details.
type EnrolledCourse struct {
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Image         string    `json:"image,omitempty"`
	Progress      float64   `json:"progress"`
	CurrentLesson string    `json:"currentLesson,omitempty"`
	EnrolledAt    time.Time `json:"enrolledAt"`
	Instructor    string    `json:"instructor"`
}

// ActivityEntry is one recent lesson progress event.
type ActivityEntry struct {
	Lesson     string                `json:"lesson"`
	Status     models.ProgressStatus `json:"status"`
	TimeSpent  float64               `json:"timeSpent"`
	ModifiedAt time.Time             `json:"modifiedAt"`
}

// DashboardResponse is the per-request aggregation of a member's
// enrollments, course details and recent activity. It is computed fresh
// on every call and never persisted.
type DashboardResponse struct {
	User           string              `json:"user"`
	Statistics     DashboardStatistics `json:"statistics"`
	Courses        []EnrolledCourse    `json:"courses"`
	RecentActivity []ActivityEntry     `json:"recentActivity"`
}
