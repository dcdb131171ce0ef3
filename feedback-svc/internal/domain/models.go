package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("feedback not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateFeedback = errors.New("the same feedback was already sent recently")
)

type Feedback struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"max=120"`
	Phone     string    `json:"phone" validate:"max=32"`
	Message   string    `json:"message" validate:"required,max=2000"`
	Rating    int       `json:"rating" validate:"gte=0,lte=5"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackFilter struct {
	UnreadOnly bool
}

// Stats summarises ratings. Feedback sent without a rating counts towards
// Count but not towards the average.
type Stats struct {
	Count         int            `json:"count"`
	Rated         int            `json:"rated"`
	AverageRating float64        `json:"average_rating"`
	Distribution  map[string]int `json:"distribution"`
}

const EventNewFeedback = "new_feedback"

type KafkaMessage struct {
	Type       string    `json:"type"`
	FeedbackID int64     `json:"feedback_id"`
	Rating     int       `json:"rating"`
	Timestamp  time.Time `json:"timestamp"`
}
