package dto

import "time"

// HelloResponse is the payload of the connectivity check endpoints.
type HelloResponse struct {
	Message   string    `json:"message" example:"Hello from the LMS API"`
	User      string    `json:"user,omitempty" example:"user-1"`
	Timestamp time.Time `json:"timestamp"`
}
