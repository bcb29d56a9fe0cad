package repository

import (
	"context"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// Trade defines persistence for the shared trade request table
type Trade interface {
	// InsertTrade stores a new pending request and returns it with id and created_at set
	InsertTrade(ctx context.Context, req *domain.TradeRequest) (*domain.TradeRequest, error)
	// GetTrade returns domain.ErrTradeNotFound for unknown ids
	GetTrade(ctx context.Context, id string) (*domain.TradeRequest, error)
	// TransitionTrade moves a pending request to a terminal status atomically.
	// Returns domain.ErrTradeNotFound or domain.ErrTradeNotPending when it cannot.
	TransitionTrade(ctx context.Context, id string, to domain.TradeStatus) (*domain.TradeRequest, error)
	// ListTradesByStatus returns requests newest first
	ListTradesByStatus(ctx context.Context, status domain.TradeStatus) ([]domain.TradeRequest, error)
}
