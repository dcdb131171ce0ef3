package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"restoran/cart-svc/internal/cart"
	"restoran/cart-svc/internal/domain"
	"restoran/catalog"
)

type CartService struct {
	carts     CartRegistry
	catalog   CatalogReader
	languages LanguageServiceInterface
	validate  *validator.Validate
	now       func() time.Time
}

func NewCartService(carts CartRegistry, reader CatalogReader, languages LanguageServiceInterface) *CartService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	})
	return &CartService{
		carts:     carts,
		catalog:   reader,
		languages: languages,
		validate:  validate,
		now:       time.Now,
	}
}

func (s *CartService) View(ctx context.Context, session string) *domain.View {
	return s.view(ctx, session, s.carts.Get(ctx, session))
}

func (s *CartService) AddMenuItem(ctx context.Context, session string, menuItemID int64) (*domain.View, error) {
	if menuItemID <= 0 {
		return nil, fmt.Errorf("%w: menu_item_id must be positive", ErrInvalidInput)
	}
	item, err := s.catalog.MenuItem(ctx, strconv.FormatInt(menuItemID, 10))
	if err != nil {
		return nil, upstream("menu item "+strconv.FormatInt(menuItemID, 10), err)
	}
	if !item.IsAvailable {
		return nil, fmt.Errorf("menu item %d: %w", menuItemID, ErrUnavailable)
	}

	store := s.carts.Get(ctx, session)
	store.AddItem(cart.FromMenuItem(*item))
	return s.view(ctx, session, store), nil
}

func (s *CartService) AddPromotion(ctx context.Context, session string, promotionID int64) (*domain.View, error) {
	if promotionID <= 0 {
		return nil, fmt.Errorf("%w: promotion_id must be positive", ErrInvalidInput)
	}
	promo, err := s.catalog.Promotion(ctx, strconv.FormatInt(promotionID, 10))
	if err != nil {
		return nil, upstream("promotion "+strconv.FormatInt(promotionID, 10), err)
	}
	if !promo.ActiveAt(s.now()) {
		return nil, fmt.Errorf("promotion %d: %w", promotionID, ErrUnavailable)
	}

	store := s.carts.Get(ctx, session)
	store.AddPromotion(*promo)
	return s.view(ctx, session, store), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, session, ref string, quantity int) *domain.View {
	store := s.carts.Get(ctx, session)
	store.UpdateQuantity(ref, quantity)
	return s.view(ctx, session, store)
}

func (s *CartService) RemoveItem(ctx context.Context, session, ref string) *domain.View {
	store := s.carts.Get(ctx, session)
	store.RemoveItem(ref)
	return s.view(ctx, session, store)
}

func (s *CartService) Clear(ctx context.Context, session string) *domain.View {
	store := s.carts.Get(ctx, session)
	store.Clear()
	return s.view(ctx, session, store)
}

// Checkout places an order for everything in the cart. Once the order has
// been accepted the ordered quantities are taken off the cart, so lines
// changed while the order was in flight survive.
func (s *CartService) Checkout(ctx context.Context, session string, req domain.CheckoutRequest) (*catalog.Order, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, describe(verrs))
		}
		return nil, err
	}

	store := s.carts.Get(ctx, session)
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lang := s.languages.Get(ctx, session)
	order := catalog.OrderRequest{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Comment:      req.Comment,
		Language:     string(lang),
		Items:        make([]catalog.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		id, isPromotion, err := cart.ParseRef(item.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		line := catalog.OrderItem{
			Name:     item.Name.Get(lang),
			Quantity: item.Quantity,
			Price:    item.Price,
		}
		if isPromotion {
			line.PromotionID = id
		} else {
			line.MenuItemID = id
		}
		order.Items = append(order.Items, line)
		order.TotalAmount += item.Subtotal()
	}

	placed, err := s.catalog.PlaceOrder(ctx, order)
	if err != nil {
		return nil, upstream("place order", err)
	}
	store.Subtract(items)
	return placed, nil
}

func (s *CartService) view(ctx context.Context, session string, store *cart.Store) *domain.View {
	lang := s.languages.Get(ctx, session)
	items := store.Items()

	v := &domain.View{
		Items:    make([]domain.ViewItem, 0, len(items)),
		Language: lang,
	}
	for _, item := range items {
		v.Items = append(v.Items, domain.ViewItem{
			LineItem:    item,
			DisplayName: item.Name.Get(lang),
			Subtotal:    item.Subtotal(),
		})
		v.TotalPrice += item.Subtotal()
		v.TotalItems += item.Quantity
	}
	v.IsEmpty = len(items) == 0
	return v
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
