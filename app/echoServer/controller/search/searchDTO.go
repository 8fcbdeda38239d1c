package search

import "github.com/seniormugambe/lend/service/engine"

type SearchReq struct {
	Query   string          `json:"query"`
	Filters *engine.Filters `json:"filters,omitempty"`
}

type RecommendReq struct {
	History   []string `json:"history"`
	CurrentID string   `json:"current_id"`
}

type OptimalPriceReq struct {
	BasePrice float64 `json:"base_price" validate:"gte=0"`
	Demand    float64 `json:"demand" validate:"gte=0,lte=100"`
	Season    string  `json:"season" validate:"required,oneof=peak normal low"`
}

type SentimentReq struct {
	Review string `json:"review" validate:"required"`
}
