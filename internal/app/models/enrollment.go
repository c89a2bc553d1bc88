package models

import "time"

// MemberType distinguishes the kinds of course membership.
type MemberType string

const (
	MemberTypeStudent MemberType = "Student"
	MemberTypeMentor  MemberType = "Mentor"
)

// Enrollment is one member's registration in one course. At most one
// enrollment exists per (member, course) pair; the write path enforces
// this with an existence check, not a store constraint.
type Enrollment struct {
	Name          string     `json:"name"`
	Member        string     `json:"member"`
	Course        string     `json:"course"`
	MemberType    MemberType `json:"memberType"`
	Progress      float64    `json:"progress"`
	CurrentLesson string     `json:"currentLesson,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Completed reports whether the enrollment counts as a finished course.
func (e Enrollment) Completed() bool {
	return e.Progress >= 100
}
