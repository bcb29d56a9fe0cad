package trade

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// MockRepository implements repository.Trade for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) InsertTrade(ctx context.Context, req *domain.TradeRequest) (*domain.TradeRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeRequest), args.Error(1)
}

func (m *MockRepository) GetTrade(ctx context.Context, id string) (*domain.TradeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeRequest), args.Error(1)
}

func (m *MockRepository) TransitionTrade(ctx context.Context, id string, to domain.TradeStatus) (*domain.TradeRequest, error) {
	args := m.Called(ctx, id, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeRequest), args.Error(1)
}

func (m *MockRepository) ListTradesByStatus(ctx context.Context, status domain.TradeStatus) ([]domain.TradeRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeRequest), args.Error(1)
}

// fakeLedger is an in-memory Ledger recording every mutation
type fakeLedger struct {
	qty     map[string]int
	credits [][]domain.QuantitySelection
	debits  [][]domain.QuantitySelection
}

func newFakeLedger(qty map[string]int) *fakeLedger {
	return &fakeLedger{qty: qty}
}

func (l *fakeLedger) FirstShortfall(items []domain.QuantitySelection) (domain.QuantitySelection, bool) {
	for _, it := range items {
		if l.qty[it.ItemID] < it.Quantity {
			return it, true
		}
	}
	return domain.QuantitySelection{}, false
}

func (l *fakeLedger) Quantity(id string) int {
	return l.qty[id]
}

func (l *fakeLedger) Credit(_ context.Context, items []domain.QuantitySelection) {
	l.credits = append(l.credits, items)
	for _, it := range items {
		l.qty[it.ItemID] += it.Quantity
	}
}

func (l *fakeLedger) Debit(_ context.Context, items []domain.QuantitySelection) {
	l.debits = append(l.debits, items)
	for _, it := range items {
		l.qty[it.ItemID] -= it.Quantity
		if l.qty[it.ItemID] <= 0 {
			delete(l.qty, it.ItemID)
		}
	}
}

type stubCatalog map[string]domain.Item

func (c stubCatalog) Lookup(id string) (domain.Item, bool) {
	item, ok := c[id]
	return item, ok
}

func (c stubCatalog) Name(id string) string {
	if item, ok := c[id]; ok {
		return item.Name
	}
	return id
}
