package domain

import "errors"

var ErrInvalidPeriod = errors.New("period must be today or all")

const (
	PeriodToday = "today"
	PeriodAll   = "all"
)

type PopularItem struct {
	MenuItemID int64  `json:"menu_item_id"`
	NameUz     string `json:"name_uz"`
	NameRu     string `json:"name_ru"`
	NameEn     string `json:"name_en"`
	ImageURL   string `json:"image_url"`
	Price      int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
}

type PopularResponse struct {
	Period string        `json:"period"`
	Items  []PopularItem `json:"items"`
}

type FeedbackStats struct {
	Count         int64   `json:"count"`
	Rated         int64   `json:"rated"`
	AverageRating float64 `json:"average_rating"`
}
