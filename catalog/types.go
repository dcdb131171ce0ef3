// Package catalog is the typed view of the restaurant API. Entities fetched
// from the server are normalized once, in this package, into the shapes
// below; nothing downstream deals with alternate field spellings.
//
// The package is also the admin client for the restaurant API: the Create,
// Update and Delete methods, MarkFeedbackRead and WriteThenList in admin.go
// back the staff dashboard and are not called by the services in this
// module.
package catalog

import (
	"time"

	"restoran/i18n"
)

type Category struct {
	ID        string    `json:"id"`
	Name      i18n.Text `json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	SortOrder int       `json:"sort_order"`
}

type MenuItem struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        i18n.Text `json:"name"`
	Description i18n.Text `json:"description"`
	Ingredients i18n.Text `json:"ingredients"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
}

type Promotion struct {
	ID              string    `json:"id"`
	Title           i18n.Text `json:"title"`
	Description     i18n.Text `json:"description"`
	Price           int64     `json:"price"`
	DiscountPercent int       `json:"discount_percent"`
	ImageURL        string    `json:"image_url,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	IsActive        bool      `json:"is_active"`
}

// DiscountedPrice is the price a customer pays for the promotion, in so'm.
// The discount amount is rounded down.
func (p Promotion) DiscountedPrice() int64 {
	discount := p.Price * int64(p.DiscountPercent) / 100
	return p.Price - discount
}

// ActiveAt reports whether the promotion is switched on and t falls inside
// its date range. Zero dates leave that side of the range open.
func (p Promotion) ActiveAt(t time.Time) bool {
	if !p.IsActive {
		return false
	}
	if !p.StartDate.IsZero() && t.Before(p.StartDate) {
		return false
	}
	if !p.EndDate.IsZero() && t.After(p.EndDate) {
		return false
	}
	return true
}

type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type TextContent struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Text      i18n.Text `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	MenuItemID  int64  `json:"menu_item_id,omitempty"`
	PromotionID int64  `json:"promotion_id,omitempty"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

type OrderRequest struct {
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address,omitempty"`
	Comment      string      `json:"comment,omitempty"`
	Language     string      `json:"language"`
	TotalAmount  int64       `json:"total_amount"`
	Items        []OrderItem `json:"items"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address,omitempty"`
	Comment      string      `json:"comment,omitempty"`
	TotalAmount  int64       `json:"total_amount"`
	Status       string      `json:"status"`
	QRCode       string      `json:"qr_code,omitempty"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}
