package tests

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restoran/apiclient"
	"restoran/cart-svc/internal/cart"
	"restoran/cart-svc/internal/domain"
	"restoran/cart-svc/internal/mocks"
	"restoran/cart-svc/internal/service"
	"restoran/catalog"
	"restoran/i18n"
)

type fixture struct {
	kv        *cart.MemoryKV
	registry  *cart.Registry
	catalog   *mocks.CatalogReader
	languages *service.LanguageService
	svc       *service.CartService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{kv: cart.NewMemoryKV(), catalog: mocks.NewCatalogReader(t)}
	f.registry = cart.NewRegistry(f.kv, zerolog.Nop())
	f.languages = service.NewLanguageService(f.kv, zerolog.Nop())
	f.svc = service.NewCartService(f.registry, f.catalog, f.languages)
	t.Cleanup(func() { f.registry.Close(context.Background()) })
	return f
}

func menuItem(available bool) *catalog.MenuItem {
	return &catalog.MenuItem{
		ID:          "7",
		CategoryID:  "1",
		Name:        i18n.Text{Uz: "Osh", Ru: "Плов", En: "Pilaf"},
		Price:       45000,
		IsAvailable: available,
	}
}

func TestCartService_AddMenuItem(t *testing.T) {
	tests := []struct {
		name      string
		item      *catalog.MenuItem
		mockError error
		wantErr   error
		wantItems int
	}{
		{
			name:      "available item",
			item:      menuItem(true),
			wantItems: 1,
		},
		{
			name:    "unavailable item",
			item:    menuItem(false),
			wantErr: service.ErrUnavailable,
		},
		{
			name:      "unknown item",
			mockError: &apiclient.Error{Method: "GET", Path: "/menu-items/7/", Status: http.StatusNotFound},
			wantErr:   service.ErrNotFound,
		},
		{
			name:      "catalog down",
			mockError: &apiclient.Error{Method: "GET", Path: "/menu-items/7/", Status: http.StatusInternalServerError},
			wantErr:   service.ErrUpstream,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.catalog.On("MenuItem", mock.Anything, "7").Return(testCase.item, testCase.mockError).Once()

			view, err := f.svc.AddMenuItem(context.Background(), "s1", 7)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, view)
				assert.True(t, f.registry.Get(context.Background(), "s1").IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantItems, view.TotalItems)
			assert.Equal(t, "Osh", view.Items[0].DisplayName)
		})
	}
}

func TestCartService_AddMenuItemRejectsBadID(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.AddMenuItem(context.Background(), "s1", 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestCartService_AddPromotion(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		promo   *catalog.Promotion
		wantErr error
	}{
		{
			name: "active promotion",
			promo: &catalog.Promotion{ID: "5", Price: 100000, DiscountPercent: 10, IsActive: true,
				StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
		},
		{
			name:    "switched off",
			promo:   &catalog.Promotion{ID: "5", Price: 100000, IsActive: false},
			wantErr: service.ErrUnavailable,
		},
		{
			name: "expired",
			promo: &catalog.Promotion{ID: "5", Price: 100000, IsActive: true,
				EndDate: now.Add(-time.Hour)},
			wantErr: service.ErrUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.catalog.On("Promotion", mock.Anything, "5").Return(testCase.promo, nil).Once()

			view, err := f.svc.AddPromotion(context.Background(), "s1", 5)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, view.Items, 1)
			assert.Equal(t, "promotion-5", view.Items[0].ID)
			assert.Equal(t, int64(90000), view.TotalPrice)
		})
	}
}

func TestCartService_ViewUsesSessionLanguage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.catalog.On("MenuItem", mock.Anything, "7").Return(menuItem(true), nil).Once()

	_, err := f.svc.AddMenuItem(ctx, "s1", 7)
	require.NoError(t, err)
	_, err = f.languages.Set(ctx, "s1", "ru")
	require.NoError(t, err)

	view := f.svc.View(ctx, "s1")
	assert.Equal(t, i18n.Russian, view.Language)
	assert.Equal(t, "Плов", view.Items[0].DisplayName)
	assert.Equal(t, int64(45000), view.Items[0].Subtotal)
	assert.False(t, view.IsEmpty)
}

func TestCartService_UpdateRemoveClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.catalog.On("MenuItem", mock.Anything, "7").Return(menuItem(true), nil).Twice()

	_, _ = f.svc.AddMenuItem(ctx, "s1", 7)
	_, _ = f.svc.AddMenuItem(ctx, "s1", 7)

	view := f.svc.UpdateQuantity(ctx, "s1", "7", 5)
	assert.Equal(t, 5, view.TotalItems)
	assert.Equal(t, int64(225000), view.TotalPrice)

	view = f.svc.RemoveItem(ctx, "s1", "7")
	assert.True(t, view.IsEmpty)

	f.registry.Get(ctx, "s1").AddItem(cart.Product{ID: "3", Price: 100})
	view = f.svc.Clear(ctx, "s1")
	assert.Equal(t, 0, view.TotalItems)
}

func TestCartService_Checkout(t *testing.T) {
	valid := domain.CheckoutRequest{CustomerName: " Dilnoza ", Phone: "+998901112233", Address: "Chilonzor 5"}

	tests := []struct {
		name      string
		fill      bool
		req       domain.CheckoutRequest
		mockError error
		wantErr   error
		wantEmpty bool
	}{
		{name: "places order and clears cart", fill: true, req: valid, wantEmpty: true},
		{name: "empty cart", req: valid, wantErr: service.ErrEmptyCart, wantEmpty: true},
		{name: "missing phone", fill: true, req: domain.CheckoutRequest{CustomerName: "A"}, wantErr: service.ErrInvalidInput},
		{name: "blank name", fill: true, req: domain.CheckoutRequest{CustomerName: "  ", Phone: "1"}, wantErr: service.ErrInvalidInput},
		{
			name:      "upstream failure keeps cart",
			fill:      true,
			req:       valid,
			mockError: &apiclient.Error{Method: "POST", Path: "/orders/", Status: http.StatusBadGateway, Body: "kafka down"},
			wantErr:   service.ErrUpstream,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			store := f.registry.Get(ctx, "s1")
			if testCase.fill {
				store.AddItem(cart.FromMenuItem(*menuItem(true)))
				store.AddItem(cart.FromMenuItem(*menuItem(true)))
				store.AddPromotion(catalog.Promotion{ID: "5", Title: i18n.Text{Uz: "Aksiya"}, Price: 100000, DiscountPercent: 10})
			}

			expectOrder := testCase.fill && (testCase.wantErr == nil || testCase.mockError != nil)
			if expectOrder {
				want := catalog.OrderRequest{
					CustomerName: "Dilnoza",
					Phone:        "+998901112233",
					Address:      "Chilonzor 5",
					Language:     "uz",
					TotalAmount:  180000,
					Items: []catalog.OrderItem{
						{MenuItemID: 7, Name: "Osh", Quantity: 2, Price: 45000},
						{PromotionID: 5, Name: "Aksiya", Quantity: 1, Price: 90000},
					},
				}
				var placed *catalog.Order
				if testCase.mockError == nil {
					placed = &catalog.Order{ID: "31", TotalAmount: 180000, Status: "new"}
				}
				f.catalog.On("PlaceOrder", mock.Anything, want).Return(placed, testCase.mockError).Once()
			}

			order, err := f.svc.Checkout(ctx, "s1", testCase.req)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, order)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "31", order.ID)
			}
			assert.Equal(t, testCase.wantEmpty, store.IsEmpty())
		})
	}
}

func TestCartService_CheckoutKeepsLinesChangedDuringOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	store := f.registry.Get(ctx, "s1")
	store.AddItem(cart.FromMenuItem(*menuItem(true)))
	store.AddItem(cart.FromMenuItem(*menuItem(true)))

	f.catalog.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(o catalog.OrderRequest) bool {
		return len(o.Items) == 1 && o.Items[0].Quantity == 2
	})).Run(func(mock.Arguments) {
		store.AddItem(cart.Product{ID: "9", Name: i18n.Text{Uz: "Choy"}, Price: 10000})
		store.AddItem(cart.FromMenuItem(*menuItem(true)))
	}).Return(&catalog.Order{ID: "32", TotalAmount: 90000, Status: "new"}, nil).Once()

	order, err := f.svc.Checkout(ctx, "s1", domain.CheckoutRequest{CustomerName: "Dilnoza", Phone: "+998901112233"})
	require.NoError(t, err)
	assert.Equal(t, "32", order.ID)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "7", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "9", items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, int64(55000), store.TotalPrice())
}

func TestLanguageService(t *testing.T) {
	ctx := context.Background()
	kv := cart.NewMemoryKV()
	svc := service.NewLanguageService(kv, zerolog.Nop())

	assert.Equal(t, i18n.Uzbek, svc.Get(ctx, "s1"))

	lang, err := svc.Set(ctx, "s1", "EN")
	require.NoError(t, err)
	assert.Equal(t, i18n.English, lang)
	assert.Equal(t, i18n.English, svc.Get(ctx, "s1"))

	_, err = svc.Set(ctx, "s1", "de")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, i18n.English, svc.Get(ctx, "s1"))

	require.NoError(t, kv.Set(ctx, "language:s2", []byte("not json")))
	assert.Equal(t, i18n.Uzbek, svc.Get(ctx, "s2"))
}

type failingGetKV struct {
	cart.KV
}

func (failingGetKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestLanguageService_LogsStoreFailure(t *testing.T) {
	var buf bytes.Buffer
	svc := service.NewLanguageService(failingGetKV{}, zerolog.New(&buf))

	assert.Equal(t, i18n.Uzbek, svc.Get(context.Background(), "s1"))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "connection refused")

	buf.Reset()
	assert.Equal(t, i18n.Uzbek, service.NewLanguageService(cart.NewMemoryKV(), zerolog.New(&buf)).Get(context.Background(), "s2"))
	assert.Empty(t, buf.String())
}
