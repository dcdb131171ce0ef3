package catalog

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"restoran/apiclient"
)

// API is the subset of *apiclient.Client the catalog needs.
type API interface {
	Get(ctx context.Context, path string, out any) error
	GetList(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	PostFormData(ctx context.Context, path string, form *apiclient.Form, out any) error
	PatchFormData(ctx context.Context, path string, form *apiclient.Form, out any) error
	Delete(ctx context.Context, path string) error
}

type Client struct {
	api      API
	validate *validator.Validate
}

func New(api API) *Client {
	return &Client{api: api, validate: newValidator()}
}

type MenuFilter struct {
	CategoryID    string
	AvailableOnly bool
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	return list(ctx, c.api, "/categories/", normalizeCategory)
}

func (c *Client) MenuItems(ctx context.Context, filter MenuFilter) ([]MenuItem, error) {
	query := url.Values{}
	if filter.CategoryID != "" {
		query.Set("category", filter.CategoryID)
	}
	if filter.AvailableOnly {
		query.Set("available", "true")
	}
	return list(ctx, c.api, withQuery("/menu-items/", query), normalizeMenuItem)
}

func (c *Client) MenuItem(ctx context.Context, id string) (*MenuItem, error) {
	return one(ctx, c.api, "/menu-items/"+url.PathEscape(id)+"/", normalizeMenuItem)
}

func (c *Client) Promotions(ctx context.Context, activeOnly bool) ([]Promotion, error) {
	query := url.Values{}
	if activeOnly {
		query.Set("active", "true")
	}
	return list(ctx, c.api, withQuery("/promotions/", query), normalizePromotion)
}

func (c *Client) Promotion(ctx context.Context, id string) (*Promotion, error) {
	return one(ctx, c.api, "/promotions/"+url.PathEscape(id)+"/", normalizePromotion)
}

func (c *Client) Feedback(ctx context.Context, unreadOnly bool) ([]Feedback, error) {
	query := url.Values{}
	if unreadOnly {
		query.Set("unread", "true")
	}
	return list(ctx, c.api, withQuery("/feedback/", query), normalizeFeedback)
}

func (c *Client) TextContents(ctx context.Context) ([]TextContent, error) {
	return list(ctx, c.api, "/content/", normalizeTextContent)
}

func (c *Client) TextContent(ctx context.Context, key string) (*TextContent, error) {
	return one(ctx, c.api, "/content/"+url.PathEscape(key)+"/", normalizeTextContent)
}

func (c *Client) PlaceOrder(ctx context.Context, order OrderRequest) (*Order, error) {
	var resp map[string]any
	if err := c.api.Post(ctx, "/orders/", order, &resp); err != nil {
		return nil, err
	}
	placed := normalizeOrder(raw(resp))
	return &placed, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, in FeedbackInput) (*Feedback, error) {
	if err := c.check(in); err != nil {
		return nil, err
	}
	var resp map[string]any
	if err := c.api.Post(ctx, "/feedback/", in, &resp); err != nil {
		return nil, err
	}
	fb := normalizeFeedback(raw(resp))
	return &fb, nil
}

func list[T any](ctx context.Context, api API, path string, fn func(raw) T) ([]T, error) {
	var items []map[string]any
	if err := api.GetList(ctx, path, &items); err != nil {
		return nil, err
	}
	return normalizeAll(items, fn), nil
}

func one[T any](ctx context.Context, api API, path string, fn func(raw) T) (*T, error) {
	var item map[string]any
	if err := api.Get(ctx, path, &item); err != nil {
		return nil, err
	}
	out := fn(raw(item))
	return &out, nil
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
