package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/lmshub/lms-backend/internal/app/models/dto"
)

// ChatService answers free-text prompts with canned, intent-matched
// replies. This is a lookup table behind an interface boundary, not a
// language model; callers should expect nothing smarter until a real
// assistant backend replaces it.
type ChatService interface {
	Respond(message string) *dto.ChatMessageResponse
}

// chatRule maps a set of trigger keywords to one canned reply. Rules are
// checked in order; the first rule with a matching keyword wins.
type chatRule struct {
	intent   string
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{
		intent:   "greeting",
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm your learning assistant. Ask me about your courses, progress or what to learn next.",
	},
	{
		intent:   "progress",
		keywords: []string{"progress", "how am i doing", "statistics"},
		reply:    "You can see your enrollment statistics and recent activity on your dashboard.",
	},
	{
		intent:   "recommendation",
		keywords: []string{"recommend", "suggest", "what next", "what should i learn"},
		reply:    "Check the recommendations page for courses picked from your enrollment history.",
	},
	{
		intent:   "enrollment",
		keywords: []string{"enroll", "sign up", "join"},
		reply:    "Open any published course and use the enroll button. You can only enroll in a course once.",
	},
	{
		intent:   "courses",
		keywords: []string{"course", "class", "lesson"},
		reply:    "Use course search to find published courses by title or description.",
	},
}

type chatServiceImpl struct{}

// NewChatService creates a new ChatService
func NewChatService() ChatService {
	return &chatServiceImpl{}
}

// Respond matches the prompt against the rule table and returns the
// canned reply, falling back to the demo echo when nothing matches.
func (s *chatServiceImpl) Respond(message string) *dto.ChatMessageResponse {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range chatRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return &dto.ChatMessageResponse{
					Reply:     rule.reply,
					Intent:    rule.intent,
					Timestamp: time.Now(),
				}
			}
		}
	}

	return &dto.ChatMessageResponse{
		Reply:     fmt.Sprintf("I received your message: %q. I'm currently a demo - full AI integration coming soon!", message),
		Intent:    "fallback",
		Timestamp: time.Now(),
	}
}
