// Package trade implements the trade desk and the trade request lifecycle
// (pending → accepted | declined) against the shared remote table.
package trade

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/event"
	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/metrics"
	"github.com/yumbiru/yumvalues/internal/repository"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// ItemCatalog resolves items and their display names
type ItemCatalog interface {
	Lookup(id string) (domain.Item, bool)
	Name(id string) string
}

// Ledger is the slice of the inventory ledger a settlement touches
type Ledger interface {
	FirstShortfall(items []domain.QuantitySelection) (domain.QuantitySelection, bool)
	Quantity(id string) int
	Credit(ctx context.Context, items []domain.QuantitySelection)
	Debit(ctx context.Context, items []domain.QuantitySelection)
}

// Service defines trade lifecycle operations. The ledger passed in belongs to
// the calling session and is only touched after the remote store confirms.
type Service interface {
	Propose(ctx context.Context, proposal domain.TradeProposal, ledger Ledger) (*domain.TradeRequest, error)
	Accept(ctx context.Context, tradeID string, ledger Ledger) (*domain.TradeRequest, error)
	Decline(ctx context.Context, tradeID, identity string, ledger Ledger) (*domain.TradeRequest, error)
	ListPending(ctx context.Context) ([]domain.TradeRequest, error)
	RefreshPending(ctx context.Context) ([]domain.TradeRequest, error)
}

type service struct {
	repo    repository.Trade
	items   ItemCatalog
	bus     event.Bus
	pending *expirable.LRU[string, []domain.TradeRequest]
}

// NewService creates a trade service. bus may be nil.
func NewService(repo repository.Trade, items ItemCatalog, bus event.Bus, pendingTTL time.Duration) Service {
	if pendingTTL <= 0 {
		pendingTTL = DefaultPendingTTL
	}
	return &service{
		repo:    repo,
		items:   items,
		bus:     bus,
		pending: expirable.NewLRU[string, []domain.TradeRequest](1, nil, pendingTTL),
	}
}

// Propose validates the proposal against the ledger, stores it remotely and
// only then debits the offered items.
func (s *service) Propose(ctx context.Context, proposal domain.TradeProposal, ledger Ledger) (*domain.TradeRequest, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgProposeCalled, "created_by", proposal.CreatedBy, "target", proposal.TargetDisplayName)

	if proposal.TargetDisplayName == "" {
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgTargetRequired)
	}
	if err := validateQuantities(proposal.LeftItems, proposal.RightItems); err != nil {
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	if short, ok := ledger.FirstShortfall(proposal.LeftItems); ok {
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, fmt.Errorf("%w: "+ErrMsgShortfallFmt, domain.ErrInsufficientInventory,
			s.items.Name(short.ItemID), ledger.Quantity(short.ItemID), short.Quantity)
	}

	created, err := s.repo.InsertTrade(ctx, &domain.TradeRequest{
		LeftItems:         proposal.LeftItems,
		RightItems:        proposal.RightItems,
		Status:            domain.TradeStatusPending,
		CreatedBy:         proposal.CreatedBy,
		TargetProfile:     proposal.TargetDisplayName,
		TargetDisplayName: proposal.TargetDisplayName,
	})
	if err != nil {
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Error(LogMsgTradeSettleFailed, "op", "insert", "error", err)
		return nil, fmt.Errorf("%w: "+ErrMsgInsertFailedFmt, domain.ErrPersistence, err)
	}

	ledger.Debit(ctx, proposal.LeftItems)
	metrics.TradesTotal.WithLabelValues(metrics.OutcomeProposed).Inc()
	log.Info(LogMsgTradeProposed, "trade_id", created.ID)

	s.afterTransition(ctx, *created)
	return created, nil
}

// Accept settles a pending request as accepted and credits its right side
func (s *service) Accept(ctx context.Context, tradeID string, ledger Ledger) (*domain.TradeRequest, error) {
	return s.settle(ctx, tradeID, domain.TradeStatusAccepted, ledger)
}

// Decline withdraws a pending request and restores its left side to the
// proposer's ledger. Only the proposer (identity == CreatedBy) may decline.
func (s *service) Decline(ctx context.Context, tradeID, identity string, ledger Ledger) (*domain.TradeRequest, error) {
	if tradeID == "" {
		return nil, fmt.Errorf("%w: trade id is required", domain.ErrValidation)
	}
	if err := s.requireProposer(ctx, tradeID, identity); err != nil {
		return nil, err
	}
	return s.settle(ctx, tradeID, domain.TradeStatusDeclined, ledger)
}

func (s *service) requireProposer(ctx context.Context, tradeID, identity string) error {
	req, err := s.repo.GetTrade(ctx, tradeID)
	if err != nil {
		if errors.Is(err, domain.ErrTradeNotFound) {
			metrics.TradesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			return err
		}
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return fmt.Errorf("%w: "+ErrMsgGetFailedFmt, domain.ErrPersistence, err)
	}
	if req.CreatedBy != identity {
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		logger.FromContext(ctx).Warn(LogMsgNotProposer, "trade_id", tradeID, "identity", identity)
		return fmt.Errorf("%w: "+ErrMsgNotProposerFmt, domain.ErrNotTradeOwner, tradeID, req.CreatedBy)
	}
	return nil
}

// settle runs the conditional remote transition first; the ledger changes
// only once the store has confirmed it.
func (s *service) settle(ctx context.Context, tradeID string, to domain.TradeStatus, ledger Ledger) (*domain.TradeRequest, error) {
	log := logger.FromContext(ctx)

	if tradeID == "" {
		return nil, fmt.Errorf("%w: trade id is required", domain.ErrValidation)
	}

	settled, err := s.repo.TransitionTrade(ctx, tradeID, to)
	if err != nil {
		log.Warn(LogMsgTradeSettleFailed, "trade_id", tradeID, "to", to, "error", err)
		if errors.Is(err, domain.ErrTradeNotFound) || errors.Is(err, domain.ErrTradeNotPending) {
			s.invalidatePending()
			metrics.TradesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			return nil, err
		}
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, fmt.Errorf("%w: "+ErrMsgUpdateFailedFmt, domain.ErrPersistence, err)
	}

	switch to {
	case domain.TradeStatusAccepted:
		ledger.Credit(ctx, settled.RightItems)
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	case domain.TradeStatusDeclined:
		ledger.Credit(ctx, settled.LeftItems)
		metrics.TradesTotal.WithLabelValues(metrics.OutcomeDeclined).Inc()
	}
	log.Info(LogMsgTradeSettled, "trade_id", settled.ID, "status", settled.Status)

	s.afterTransition(ctx, *settled)
	return settled, nil
}

// ListPending returns pending requests newest first, served from a short-lived cache
func (s *service) ListPending(ctx context.Context) ([]domain.TradeRequest, error) {
	if cached, ok := s.pending.Get(pendingCacheKey); ok {
		return clone(cached), nil
	}
	return s.fetchPending(ctx)
}

// RefreshPending drops the cache and reloads it from the store
func (s *service) RefreshPending(ctx context.Context) ([]domain.TradeRequest, error) {
	s.invalidatePending()
	trades, err := s.fetchPending(ctx)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgPendingRefreshed, "count", len(trades))
	return trades, nil
}

func (s *service) fetchPending(ctx context.Context) ([]domain.TradeRequest, error) {
	trades, err := s.repo.ListTradesByStatus(ctx, domain.TradeStatusPending)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgListFailedFmt, domain.ErrPersistence, err)
	}
	s.pending.Add(pendingCacheKey, trades)
	return clone(trades), nil
}

func (s *service) invalidatePending() {
	s.pending.Remove(pendingCacheKey)
}

// afterTransition invalidates and warms the pending cache, then publishes the event
func (s *service) afterTransition(ctx context.Context, req domain.TradeRequest) {
	log := logger.FromContext(ctx)

	if _, err := s.RefreshPending(ctx); err != nil {
		log.Warn(LogMsgPendingRefreshed, "error", err)
	}

	if s.bus == nil {
		return
	}
	left := valuation.Total(s.items, req.LeftItems)
	right := valuation.Total(s.items, req.RightItems)
	if err := s.bus.Publish(ctx, event.NewTradeEvent(req, left, right)); err != nil {
		log.Warn(LogMsgPublishEventFailed, "trade_id", req.ID, "error", err)
	}
}

func validateQuantities(sides ...[]domain.QuantitySelection) error {
	for _, side := range sides {
		for _, it := range side {
			if it.ItemID == "" || it.Quantity < 1 {
				return fmt.Errorf("%w: "+ErrMsgBadQuantityFmt, domain.ErrValidation, it.ItemID, it.Quantity)
			}
		}
	}
	return nil
}

func clone(trades []domain.TradeRequest) []domain.TradeRequest {
	out := make([]domain.TradeRequest, len(trades))
	copy(out, trades)
	return out
}
