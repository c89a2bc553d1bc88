package models

import "time"

// Course is a learning unit owned by the external record store. Only
// published courses are eligible for search and recommendation.
type Course struct {
	Name              string    `json:"name"`
	Title             string    `json:"title"`
	ShortIntroduction string    `json:"shortIntroduction"`
	Image             string    `json:"image,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	Published         bool      `json:"published"`
	Owner             string    `json:"owner"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
}
