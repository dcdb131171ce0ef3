package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"restoran/menu-svc/internal/domain"
)

type OrderService struct {
	repo       OrderRepository
	menuItems  MenuItemRepository
	promotions PromotionRepository
	qrEncoder  QRGenerator
	publisher  OrderPublisher
	logger     zerolog.Logger
	now        func() time.Time
}

func NewOrderService(repo OrderRepository, menuItems MenuItemRepository, promotions PromotionRepository,
	qr QRGenerator, publisher OrderPublisher, logger zerolog.Logger) *OrderService {
	return &OrderService{
		repo:       repo,
		menuItems:  menuItems,
		promotions: promotions,
		qrEncoder:  qr,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// Create prices every line from the catalog, ignoring what the client sent,
// and stores the order with its items in one transaction. The QR code and
// the Kafka event are best effort.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if order.Language == "" {
		order.Language = "uz"
	}
	if err := check(order); err != nil {
		return err
	}

	now := s.now()
	order.TotalAmount = 0
	for i := range order.Items {
		item := &order.Items[i]
		if err := s.price(ctx, item, order.Language, now); err != nil {
			return err
		}
		order.TotalAmount += item.Subtotal()
	}
	order.Status = domain.StatusNew

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			if err := s.repo.SaveQRCode(ctx, order.ID, qr); err != nil {
				s.logger.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to save qr code")
			}
		}
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:        domain.EventOrderPlaced,
			OrderID:     order.ID,
			TotalAmount: order.TotalAmount,
			Timestamp:   now,
		}
		for _, item := range order.Items {
			event.Items = append(event.Items, domain.OrderEventItem{
				MenuItemID:  item.MenuItemID,
				PromotionID: item.PromotionID,
				Quantity:    item.Quantity,
			})
		}
		if err := s.publisher.PublishOrder(ctx, event); err != nil {
			s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to publish order event")
		}
	}

	return nil
}

func (s *OrderService) price(ctx context.Context, item *domain.OrderItem, lang string, now time.Time) error {
	if item.PromotionID > 0 {
		promo, err := s.promotions.GetPromotion(ctx, item.PromotionID)
		if err != nil {
			return unknownLine(err, "promotion", item.PromotionID)
		}
		if !promo.IsActive || now.Before(promo.StartDate) || now.After(promo.EndDate) {
			return fmt.Errorf("%w: promotion %d is not active", domain.ErrInvalidInput, item.PromotionID)
		}
		item.Price = promo.DiscountedPrice()
		item.Name = localized(lang, promo.TitleUz, promo.TitleRu, promo.TitleEn)
		return nil
	}

	menuItem, err := s.menuItems.GetMenuItem(ctx, item.MenuItemID)
	if err != nil {
		return unknownLine(err, "menu item", item.MenuItemID)
	}
	if !menuItem.IsAvailable {
		return fmt.Errorf("%w: menu item %d is not available", domain.ErrInvalidInput, item.MenuItemID)
	}
	item.Price = menuItem.Price
	item.Name = localized(lang, menuItem.NameUz, menuItem.NameRu, menuItem.NameEn)
	return nil
}

func unknownLine(err error, what string, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %d does not exist", domain.ErrInvalidInput, what, id)
	}
	return err
}

func localized(lang, uz, ru, en string) string {
	switch {
	case lang == "ru" && ru != "":
		return ru
	case lang == "en" && en != "":
		return en
	case uz != "":
		return uz
	case ru != "":
		return ru
	default:
		return en
	}
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, items, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].QRCode = s.QRLink(orders[i].ID)
	}
	return orders, nil
}

// GetQRCode returns the stored PNG, regenerating it when an earlier save
// failed.
func (s *OrderService) GetQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(ctx, orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int64) string {
	return fmt.Sprintf("/api/orders/%d/qrcode/", orderID)
}

var _ OrderServiceInterface = (*OrderService)(nil)
