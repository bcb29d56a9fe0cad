package sse

import "github.com/yumbiru/yumvalues/internal/domain"

// TradePayload is sent for every trade lifecycle event
type TradePayload struct {
	TradeID           string                     `json:"trade_id"`
	Status            domain.TradeStatus         `json:"status"`
	CreatedBy         string                     `json:"created_by"`
	TargetDisplayName string                     `json:"target_display_name"`
	LeftItems         []domain.QuantitySelection `json:"left_items"`
	RightItems        []domain.QuantitySelection `json:"right_items"`
	// LeftValue and RightValue are precise-formatted totals ("1.5k")
	LeftValue  string `json:"left_value"`
	RightValue string `json:"right_value"`
}

// ViewerCountPayload carries the current number of active viewers
type ViewerCountPayload struct {
	Count    int `json:"count"`
	Previous int `json:"previous"`
}
