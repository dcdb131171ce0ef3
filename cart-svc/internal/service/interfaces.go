package service

import (
	"context"

	"restoran/cart-svc/internal/cart"
	"restoran/cart-svc/internal/domain"
	"restoran/catalog"
	"restoran/i18n"
)

type CatalogReader interface {
	MenuItem(ctx context.Context, id string) (*catalog.MenuItem, error)
	Promotion(ctx context.Context, id string) (*catalog.Promotion, error)
	PlaceOrder(ctx context.Context, order catalog.OrderRequest) (*catalog.Order, error)
}

type CartRegistry interface {
	Get(ctx context.Context, session string) *cart.Store
}

type CartServiceInterface interface {
	View(ctx context.Context, session string) *domain.View
	AddMenuItem(ctx context.Context, session string, menuItemID int64) (*domain.View, error)
	AddPromotion(ctx context.Context, session string, promotionID int64) (*domain.View, error)
	UpdateQuantity(ctx context.Context, session, ref string, quantity int) *domain.View
	RemoveItem(ctx context.Context, session, ref string) *domain.View
	Clear(ctx context.Context, session string) *domain.View
	Checkout(ctx context.Context, session string, req domain.CheckoutRequest) (*catalog.Order, error)
}

type LanguageServiceInterface interface {
	Get(ctx context.Context, session string) i18n.Language
	Set(ctx context.Context, session, code string) (i18n.Language, error)
}

var (
	_ CartServiceInterface     = (*CartService)(nil)
	_ LanguageServiceInterface = (*LanguageService)(nil)
	_ CartRegistry             = (*cart.Registry)(nil)
)
