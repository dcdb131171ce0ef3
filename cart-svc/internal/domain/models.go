package domain

import (
	"restoran/cart-svc/internal/cart"
	"restoran/i18n"
)

// View is the cart as returned to the customer.
type View struct {
	Items      []ViewItem    `json:"items"`
	TotalPrice int64         `json:"total_price"`
	TotalItems int           `json:"total_items"`
	IsEmpty    bool          `json:"is_empty"`
	Language   i18n.Language `json:"language"`
}

type ViewItem struct {
	cart.LineItem
	DisplayName string `json:"display_name"`
	Subtotal    int64  `json:"subtotal"`
}

type AddItemRequest struct {
	MenuItemID int64 `json:"menu_item_id" validate:"required,gt=0"`
}

type AddPromotionRequest struct {
	PromotionID int64 `json:"promotion_id" validate:"required,gt=0"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CheckoutRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=120"`
	Phone        string `json:"phone" validate:"required,max=32"`
	Address      string `json:"address" validate:"max=255"`
	Comment      string `json:"comment" validate:"max=1000"`
}

type LanguageRequest struct {
	Language string `json:"language"`
}

type LanguageResponse struct {
	Language i18n.Language `json:"language"`
}
