package service

import (
	"context"
	"time"

	"restoran/menu-svc/internal/domain"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, m *domain.MenuItem) error
	ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int64) error
}

type PromotionRepository interface {
	CreatePromotion(ctx context.Context, p *domain.Promotion) error
	ListPromotions(ctx context.Context, activeAt *time.Time) ([]domain.Promotion, error)
	GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error)
	UpdatePromotion(ctx context.Context, p *domain.Promotion) error
	DeletePromotion(ctx context.Context, id int64) error
}

type ContentRepository interface {
	CreateTextContent(ctx context.Context, c *domain.TextContent) error
	ListTextContents(ctx context.Context) ([]domain.TextContent, error)
	GetTextContent(ctx context.Context, key string) (*domain.TextContent, error)
	UpdateTextContent(ctx context.Context, c *domain.TextContent) error
	DeleteTextContent(ctx context.Context, key string) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	SaveQRCode(ctx context.Context, orderID int64, qr []byte) error
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, []domain.OrderItem, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetQRCode(ctx context.Context, orderID int64) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, c *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type MenuItemServiceInterface interface {
	Create(ctx context.Context, m *domain.MenuItem) error
	List(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int64) (*domain.MenuItem, error)
	Update(ctx context.Context, m *domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
}

type PromotionServiceInterface interface {
	Create(ctx context.Context, p *domain.Promotion) error
	List(ctx context.Context, activeOnly bool) ([]domain.Promotion, error)
	Get(ctx context.Context, id int64) (*domain.Promotion, error)
	Update(ctx context.Context, p *domain.Promotion) error
	Delete(ctx context.Context, id int64) error
}

type ContentServiceInterface interface {
	Create(ctx context.Context, c *domain.TextContent) error
	List(ctx context.Context) ([]domain.TextContent, error)
	Get(ctx context.Context, key string) (*domain.TextContent, error)
	Update(ctx context.Context, c *domain.TextContent) error
	Delete(ctx context.Context, key string) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	GetQRCode(ctx context.Context, orderID int64) ([]byte, error)
	QRLink(orderID int64) string
}
