package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatServiceIntents(t *testing.T) {
	svc := NewChatService()

	tests := []struct {
		name    string
		message string
		intent  string
	}{
		{"greeting", "Hello there", "greeting"},
		{"greeting uppercase", "HEY!", "greeting"},
		{"progress", "show me my progress", "progress"},
		{"recommendation", "can you recommend something", "recommendation"},
		{"recommendation question", "what should i learn?", "recommendation"},
		{"enrollment", "how do I enroll?", "enrollment"},
		{"courses", "are any classes available", "courses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := svc.Respond(tt.message)
			require.NotNil(t, response)
			assert.Equal(t, tt.intent, response.Intent)
			assert.NotEmpty(t, response.Reply)
			assert.False(t, response.Timestamp.IsZero())
		})
	}
}

func TestChatServiceFirstRuleWins(t *testing.T) {
	svc := NewChatService()

	// "hello" and "course" both match; the greeting rule comes first.
	response := svc.Respond("hello, I want a course")
	assert.Equal(t, "greeting", response.Intent)
}

func TestChatServiceFallbackEchoesMessage(t *testing.T) {
	svc := NewChatService()

	response := svc.Respond("xyzzy")
	assert.Equal(t, "fallback", response.Intent)
	assert.Equal(t, `I received your message: "xyzzy". I'm currently a demo - full AI integration coming soon!`, response.Reply)
}
