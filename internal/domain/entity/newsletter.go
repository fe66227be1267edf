package entity

import "time"

// Newsletter is one issue of the subscriber-only archive.
type Newsletter struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

// SubscribeInput is the body of POST /newsletter/subscribe.
type SubscribeInput struct {
	Email string `json:"email"`
}
