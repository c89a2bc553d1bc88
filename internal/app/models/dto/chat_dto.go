package dto

import "time"

// ChatMessageRequest is a free-text prompt from the chat widget.
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatMessageResponse is the canned reply matched to the prompt.
type ChatMessageResponse struct {
	Reply     string    `json:"reply"`
	Intent    string    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}
