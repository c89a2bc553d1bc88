package models

import "time"

// ProgressStatus is the recorded state of a lesson.
type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "Not Started"
	ProgressInProgress ProgressStatus = "In Progress"
	ProgressComplete   ProgressStatus = "Complete"
)

// ProgressRecord is one recorded lesson state change. The dashboard only
// consumes these as a bounded, most-recent-first activity feed.
type ProgressRecord struct {
	Lesson     string         `json:"lesson"`
	Status     ProgressStatus `json:"status"`
	TimeSpent  float64        `json:"timeSpent"` // seconds
	ModifiedAt time.Time      `json:"modifiedAt"`
}
