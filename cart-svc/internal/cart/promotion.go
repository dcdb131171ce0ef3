package cart

import (
	"fmt"
	"strconv"
	"strings"

	"restoran/catalog"
)

// PromotionPrefix namespaces promotion ids so promotion 5 and menu item 5
// never share a cart line.
const PromotionPrefix = "promotion-"

func PromotionRef(id string) string {
	return PromotionPrefix + id
}

// FromPromotion converts a promotion into the product shape used for menu
// items. The id gets PromotionPrefix and the price is the discounted one.
func FromPromotion(p catalog.Promotion) Product {
	return Product{
		ID:          PromotionRef(p.ID),
		Name:        p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.DiscountedPrice(),
		IsPromotion: true,
	}
}

func FromMenuItem(m catalog.MenuItem) Product {
	return Product{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		Ingredients: m.Ingredients,
		ImageURL:    m.ImageURL,
		Price:       m.Price,
	}
}

// AddPromotion adds one unit of the promotion, see FromPromotion.
func (s *Store) AddPromotion(p catalog.Promotion) {
	s.AddItem(FromPromotion(p))
}

// ParseRef splits a line id into the catalog id it points at and whether
// that id is a promotion.
func ParseRef(ref string) (int64, bool, error) {
	raw, isPromotion := strings.CutPrefix(ref, PromotionPrefix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false, fmt.Errorf("invalid cart reference %q", ref)
	}
	return id, isPromotion, nil
}
