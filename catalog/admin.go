package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"restoran/apiclient"
)

type CategoryInput struct {
	NameUz    string          `json:"name_uz" validate:"required"`
	NameRu    string          `json:"name_ru" validate:"required"`
	NameEn    string          `json:"name_en" validate:"required"`
	SortOrder int             `json:"sort_order" validate:"gte=0"`
	Image     *apiclient.File `json:"-"`
}

type MenuItemInput struct {
	CategoryID    int64           `json:"category_id" validate:"required,gt=0"`
	NameUz        string          `json:"name_uz" validate:"required"`
	NameRu        string          `json:"name_ru" validate:"required"`
	NameEn        string          `json:"name_en" validate:"required"`
	DescriptionUz string          `json:"description_uz"`
	DescriptionRu string          `json:"description_ru"`
	DescriptionEn string          `json:"description_en"`
	IngredientsUz string          `json:"ingredients_uz"`
	IngredientsRu string          `json:"ingredients_ru"`
	IngredientsEn string          `json:"ingredients_en"`
	Price         int64           `json:"price" validate:"gt=0"`
	IsAvailable   bool            `json:"is_available"`
	Image         *apiclient.File `json:"-"`
}

type PromotionInput struct {
	TitleUz         string          `json:"title_uz" validate:"required"`
	TitleRu         string          `json:"title_ru" validate:"required"`
	TitleEn         string          `json:"title_en" validate:"required"`
	DescriptionUz   string          `json:"description_uz"`
	DescriptionRu   string          `json:"description_ru"`
	DescriptionEn   string          `json:"description_en"`
	Price           int64           `json:"price" validate:"gt=0"`
	DiscountPercent int             `json:"discount_percent" validate:"gte=0,lte=100"`
	StartDate       time.Time       `json:"start_date" validate:"required"`
	EndDate         time.Time       `json:"end_date" validate:"required,gtefield=StartDate"`
	IsActive        bool            `json:"is_active"`
	Image           *apiclient.File `json:"-"`
}

type TextContentInput struct {
	Key    string `json:"key" validate:"required,max=64"`
	TextUz string `json:"text_uz" validate:"required"`
	TextRu string `json:"text_ru" validate:"required"`
	TextEn string `json:"text_en" validate:"required"`
}

type FeedbackInput struct {
	Name    string `json:"name" validate:"max=120"`
	Phone   string `json:"phone" validate:"max=32"`
	Message string `json:"message" validate:"required,max=2000"`
	Rating  int    `json:"rating" validate:"gte=0,lte=5"`
}

// ValidationError lists the input fields that failed client-side checks. It
// is returned before any request is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, rule := range e.Fields {
		parts = append(parts, field+" ("+rule+")")
	}
	sort.Strings(parts)
	return "invalid input: " + strings.Join(parts, ", ")
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (c *Client) check(in any) error {
	err := c.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = fe.Tag()
	}
	return out
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	return write(ctx, c, "POST", "/categories/", in, in.Image, normalizeCategory)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*Category, error) {
	return write(ctx, c, "PATCH", "/categories/"+url.PathEscape(id)+"/", in, in.Image, normalizeCategory)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/categories/"+url.PathEscape(id)+"/")
}

func (c *Client) CreateMenuItem(ctx context.Context, in MenuItemInput) (*MenuItem, error) {
	return write(ctx, c, "POST", "/menu-items/", in, in.Image, normalizeMenuItem)
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, in MenuItemInput) (*MenuItem, error) {
	return write(ctx, c, "PATCH", "/menu-items/"+url.PathEscape(id)+"/", in, in.Image, normalizeMenuItem)
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/menu-items/"+url.PathEscape(id)+"/")
}

func (c *Client) CreatePromotion(ctx context.Context, in PromotionInput) (*Promotion, error) {
	return write(ctx, c, "POST", "/promotions/", in, in.Image, normalizePromotion)
}

func (c *Client) UpdatePromotion(ctx context.Context, id string, in PromotionInput) (*Promotion, error) {
	return write(ctx, c, "PATCH", "/promotions/"+url.PathEscape(id)+"/", in, in.Image, normalizePromotion)
}

func (c *Client) DeletePromotion(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/promotions/"+url.PathEscape(id)+"/")
}

func (c *Client) CreateTextContent(ctx context.Context, in TextContentInput) (*TextContent, error) {
	return write(ctx, c, "POST", "/content/", in, nil, normalizeTextContent)
}

func (c *Client) UpdateTextContent(ctx context.Context, key string, in TextContentInput) (*TextContent, error) {
	return write(ctx, c, "PATCH", "/content/"+url.PathEscape(key)+"/", in, nil, normalizeTextContent)
}

func (c *Client) DeleteTextContent(ctx context.Context, key string) error {
	return c.api.Delete(ctx, "/content/"+url.PathEscape(key)+"/")
}

func (c *Client) MarkFeedbackRead(ctx context.Context, id string, read bool) (*Feedback, error) {
	var resp map[string]any
	if err := c.api.Patch(ctx, "/feedback/"+url.PathEscape(id)+"/", map[string]bool{"is_read": read}, &resp); err != nil {
		return nil, err
	}
	fb := normalizeFeedback(raw(resp))
	return &fb, nil
}

func (c *Client) DeleteFeedback(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/feedback/"+url.PathEscape(id)+"/")
}

// WriteThenList runs a write and, when it succeeds, fetches the list once so
// the caller can show what the server now holds. There is no delayed second
// fetch; a concurrent edit elsewhere simply shows up on the next read.
func WriteThenList[T any](ctx context.Context, write func(context.Context) error, list func(context.Context) ([]T, error)) ([]T, error) {
	if err := write(ctx); err != nil {
		return nil, err
	}
	return list(ctx)
}

func write[T any](ctx context.Context, c *Client, method, path string, in any, image *apiclient.File, fn func(raw) T) (*T, error) {
	if err := c.check(in); err != nil {
		return nil, err
	}

	var resp map[string]any
	var err error
	if image != nil {
		form, ferr := formFrom(in, *image)
		if ferr != nil {
			return nil, ferr
		}
		if method == "PATCH" {
			err = c.api.PatchFormData(ctx, path, form, &resp)
		} else {
			err = c.api.PostFormData(ctx, path, form, &resp)
		}
	} else if method == "PATCH" {
		err = c.api.Patch(ctx, path, in, &resp)
	} else {
		err = c.api.Post(ctx, path, in, &resp)
	}
	if err != nil {
		return nil, err
	}

	out := fn(raw(resp))
	return &out, nil
}

// formFrom flattens an input struct through its JSON encoding so the form
// fields use the same names the JSON body would.
func formFrom(in any, image apiclient.File) (*apiclient.Form, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode form fields: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("encode form fields: %w", err)
	}

	form := apiclient.NewForm()
	for name, value := range fields {
		switch v := value.(type) {
		case string:
			form.Set(name, v)
		case float64:
			form.Set(name, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			form.Set(name, strconv.FormatBool(v))
		case nil:
		default:
			encoded, _ := json.Marshal(v)
			form.Set(name, string(encoded))
		}
	}
	if image.FieldName == "" {
		image.FieldName = "image"
	}
	form.AddFile(image)
	return form, nil
}
