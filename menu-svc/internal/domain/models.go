package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

type Category struct {
	ID        int64     `json:"id"`
	NameUz    string    `json:"name_uz" validate:"required,max=120"`
	NameRu    string    `json:"name_ru" validate:"required,max=120"`
	NameEn    string    `json:"name_en" validate:"required,max=120"`
	ImageURL  string    `json:"image_url"`
	SortOrder int       `json:"sort_order" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID            int64     `json:"id"`
	CategoryID    int64     `json:"category_id" validate:"required,gt=0"`
	NameUz        string    `json:"name_uz" validate:"required,max=200"`
	NameRu        string    `json:"name_ru" validate:"required,max=200"`
	NameEn        string    `json:"name_en" validate:"required,max=200"`
	DescriptionUz string    `json:"description_uz"`
	DescriptionRu string    `json:"description_ru"`
	DescriptionEn string    `json:"description_en"`
	IngredientsUz string    `json:"ingredients_uz"`
	IngredientsRu string    `json:"ingredients_ru"`
	IngredientsEn string    `json:"ingredients_en"`
	Price         int64     `json:"price" validate:"gt=0"`
	ImageURL      string    `json:"image_url"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}

type MenuFilter struct {
	CategoryID    int64
	AvailableOnly bool
}

type Promotion struct {
	ID              int64     `json:"id"`
	TitleUz         string    `json:"title_uz" validate:"required,max=200"`
	TitleRu         string    `json:"title_ru" validate:"required,max=200"`
	TitleEn         string    `json:"title_en" validate:"required,max=200"`
	DescriptionUz   string    `json:"description_uz"`
	DescriptionRu   string    `json:"description_ru"`
	DescriptionEn   string    `json:"description_en"`
	Price           int64     `json:"price" validate:"gt=0"`
	DiscountPercent int       `json:"discount_percent" validate:"gte=0,lte=100"`
	ImageURL        string    `json:"image_url"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// DiscountedPrice is what one unit of the promotion costs, the discount
// rounded down to whole so'm.
func (p Promotion) DiscountedPrice() int64 {
	return p.Price - p.Price*int64(p.DiscountPercent)/100
}

type TextContent struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key" validate:"required,max=64"`
	TextUz    string    `json:"text_uz" validate:"required"`
	TextRu    string    `json:"text_ru" validate:"required"`
	TextEn    string    `json:"text_en" validate:"required"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name" validate:"required,max=120"`
	Phone        string      `json:"phone" validate:"required,max=32"`
	Address      string      `json:"address" validate:"max=255"`
	Comment      string      `json:"comment" validate:"max=1000"`
	Language     string      `json:"language" validate:"omitempty,oneof=uz ru en"`
	TotalAmount  int64       `json:"total_amount"`
	Status       string      `json:"status"`
	QRCode       string      `json:"qr_code,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// OrderItem names either a menu item or a promotion, never both.
type OrderItem struct {
	MenuItemID  int64  `json:"menu_item_id,omitempty" validate:"required_without=PromotionID,excluded_with=PromotionID"`
	PromotionID int64  `json:"promotion_id,omitempty" validate:"required_without=MenuItemID"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	Price       int64  `json:"price" validate:"gte=0"`
}

func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

const (
	EventOrderPlaced = "order_placed"
	StatusNew        = "new"
)

// OrderEvent is published to Kafka once an order is stored.
type OrderEvent struct {
	Type        string           `json:"type"`
	OrderID     int64            `json:"order_id"`
	TotalAmount int64            `json:"total_amount"`
	Items       []OrderEventItem `json:"items"`
	Timestamp   time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	MenuItemID  int64 `json:"menu_item_id,omitempty"`
	PromotionID int64 `json:"promotion_id,omitempty"`
	Quantity    int   `json:"quantity"`
}
