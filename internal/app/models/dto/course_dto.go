package dto

// CourseSummary is the trimmed course shape returned by search.
type CourseSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Owner       string `json:"owner"`
}

// EnrollResult reports the outcome of an enroll attempt. A duplicate
// enrollment is a user-facing Success=false result, not an error.
type EnrollResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	EnrollmentID string `json:"enrollmentId,omitempty"`
}
