package dto

// RecommendedCourse is one scored, ranked course suggestion. Scores are
// unbounded above with a baseline of 50; the reason is drawn from a fixed
// justification list.
type RecommendedCourse struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Score       int      `json:"recommendationScore"`
	Reason      string   `json:"reason"`
}
