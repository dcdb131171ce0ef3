package domain

import "time"

const (
	EventOrderPlaced = "order_placed"
	EventNewFeedback = "new_feedback"
)

// KafkaMessage covers every event on the topic; fields not used by an event
// type are left zero.
type KafkaMessage struct {
	Type        string      `json:"type"`
	OrderID     int64       `json:"order_id,omitempty"`
	TotalAmount int64       `json:"total_amount,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
	FeedbackID  int64       `json:"feedback_id,omitempty"`
	Rating      int         `json:"rating,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

type OrderItem struct {
	MenuItemID  int64 `json:"menu_item_id,omitempty"`
	PromotionID int64 `json:"promotion_id,omitempty"`
	Quantity    int   `json:"quantity"`
}
