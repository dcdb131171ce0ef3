package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"restoran/i18n"
)

// raw is an entity as the server sent it. Older endpoints use name_uz, some
// clients posted nameUz, and a few payloads nest {"name": {"uz": ...}}; the
// accessors below try each spelling in turn.
type raw map[string]any

func (r raw) first(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r raw) str(keys ...string) string {
	v, ok := r.first(keys...)
	if !ok {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func (r raw) int64(keys ...string) int64 {
	v, ok := r.first(keys...)
	if !ok {
		return 0
	}
	switch val := v.(type) {
	case float64:
		return int64(val)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		f, _ := val.Float64()
		return int64(f)
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		f, _ := strconv.ParseFloat(s, 64)
		return int64(f)
	default:
		return 0
	}
}

func (r raw) boolean(fallback bool, keys ...string) bool {
	v, ok := r.first(keys...)
	if !ok {
		return fallback
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fallback
		}
		return b
	case float64:
		return val != 0
	default:
		return fallback
	}
}

func (r raw) time(keys ...string) time.Time {
	s := r.str(keys...)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// text collects one localized field. bases are tried in order, so a
// promotion can fall back from "title" to "name".
func (r raw) text(bases ...string) i18n.Text {
	var out i18n.Text
	for _, base := range bases {
		got := i18n.Text{
			Uz: r.localized(base, i18n.Uzbek),
			Ru: r.localized(base, i18n.Russian),
			En: r.localized(base, i18n.English),
		}
		if out.Uz == "" {
			out.Uz = got.Uz
		}
		if out.Ru == "" {
			out.Ru = got.Ru
		}
		if out.En == "" {
			out.En = got.En
		}
	}
	return out
}

func (r raw) localized(base string, lang i18n.Language) string {
	code := string(lang)
	if nested, ok := r[base].(map[string]any); ok {
		if s := raw(nested).str(code); s != "" {
			return s
		}
	}
	if s := r.str(base+"_"+code, base+strings.ToUpper(code[:1])+code[1:]); s != "" {
		return s
	}
	if s, ok := r[base].(string); ok {
		return s
	}
	return ""
}

func normalizeCategory(r raw) Category {
	return Category{
		ID:        r.str("id", "pk"),
		Name:      r.text("name", "title"),
		ImageURL:  r.str("image_url", "imageUrl", "image"),
		SortOrder: int(r.int64("sort_order", "sortOrder", "order")),
	}
}

func normalizeMenuItem(r raw) MenuItem {
	return MenuItem{
		ID:          r.str("id", "pk"),
		CategoryID:  r.str("category_id", "categoryId", "category"),
		Name:        r.text("name"),
		Description: r.text("description"),
		Ingredients: r.text("ingredients"),
		Price:       r.int64("price"),
		ImageURL:    r.str("image_url", "imageUrl", "image"),
		IsAvailable: r.boolean(true, "is_available", "isAvailable", "available"),
	}
}

func normalizePromotion(r raw) Promotion {
	return Promotion{
		ID:              r.str("id", "pk"),
		Title:           r.text("title", "name"),
		Description:     r.text("description"),
		Price:           r.int64("price", "original_price", "originalPrice"),
		DiscountPercent: int(r.int64("discount_percent", "discountPercent", "discount")),
		ImageURL:        r.str("image_url", "imageUrl", "image"),
		StartDate:       r.time("start_date", "startDate"),
		EndDate:         r.time("end_date", "endDate"),
		IsActive:        r.boolean(true, "is_active", "isActive", "active"),
	}
}

func normalizeFeedback(r raw) Feedback {
	return Feedback{
		ID:        r.str("id", "pk"),
		Name:      r.str("name", "full_name", "fullName"),
		Phone:     r.str("phone", "phone_number", "phoneNumber"),
		Message:   r.str("message", "text", "comment"),
		Rating:    int(r.int64("rating")),
		IsRead:    r.boolean(false, "is_read", "isRead"),
		CreatedAt: r.time("created_at", "createdAt"),
	}
}

func normalizeTextContent(r raw) TextContent {
	return TextContent{
		ID:        r.str("id", "pk"),
		Key:       r.str("key", "slug"),
		Text:      r.text("text", "content"),
		UpdatedAt: r.time("updated_at", "updatedAt"),
	}
}

func normalizeOrder(r raw) Order {
	order := Order{
		ID:           r.str("id", "pk"),
		CustomerName: r.str("customer_name", "customerName"),
		Phone:        r.str("phone"),
		Address:      r.str("address"),
		Comment:      r.str("comment"),
		TotalAmount:  r.int64("total_amount", "totalAmount"),
		Status:       r.str("status"),
		QRCode:       r.str("qr_code", "qrCode"),
		CreatedAt:    r.time("created_at", "createdAt"),
		Items:        []OrderItem{},
	}
	if items, ok := r["items"].([]any); ok {
		for _, it := range items {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			item := raw(m)
			order.Items = append(order.Items, OrderItem{
				MenuItemID:  item.int64("menu_item_id", "menuItemId"),
				PromotionID: item.int64("promotion_id", "promotionId"),
				Name:        item.str("name"),
				Quantity:    int(item.int64("quantity")),
				Price:       item.int64("price"),
			})
		}
	}
	return order
}

func normalizeAll[T any](items []map[string]any, fn func(raw) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, fn(raw(item)))
	}
	return out
}
