package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// PendingLister returns the shared list of open trade requests
type PendingLister interface {
	ListPending(ctx context.Context) ([]domain.TradeRequest, error)
}

// PendingTradeResponse is an open trade request with both sides valued
type PendingTradeResponse struct {
	ID                string                     `json:"id"`
	CreatedAt         time.Time                  `json:"created_at"`
	CreatedBy         string                     `json:"created_by"`
	TargetDisplayName string                     `json:"target_display_name"`
	LeftItems         []domain.QuantitySelection `json:"left_items"`
	RightItems        []domain.QuantitySelection `json:"right_items"`
	YourValue         string                     `json:"your_value"`
	TheirValue        string                     `json:"their_value"`
}

// HandleListPendingTrades lists pending trade requests, newest first
// @Summary List pending trades
// @Tags trades
// @Produce json
// @Success 200 {array} PendingTradeResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/trades/pending [get]
func HandleListPendingTrades(trades PendingLister, items valuation.ItemLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := trades.ListPending(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListPendingFailed, err)
			return
		}

		resp := make([]PendingTradeResponse, 0, len(pending))
		for _, req := range pending {
			resp = append(resp, PendingTradeResponse{
				ID:                req.ID,
				CreatedAt:         req.CreatedAt,
				CreatedBy:         req.CreatedBy,
				TargetDisplayName: req.TargetDisplayName,
				LeftItems:         req.LeftItems,
				RightItems:        req.RightItems,
				YourValue:         valuation.FormatPrecise(valuation.Total(items, req.LeftItems)),
				TheirValue:        valuation.FormatPrecise(valuation.Total(items, req.RightItems)),
			})
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
