package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yumbiru/yumvalues/internal/catalog"
	"github.com/yumbiru/yumvalues/internal/database/memory"
	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/session"
	"github.com/yumbiru/yumvalues/internal/trade"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Item{
		{ID: "red-knife", Name: "Red Knife", Rarity: domain.RarityEpic, Type: domain.ItemTypeKnife, Value: domain.ParseItemValue("12,500")},
		{ID: "blue-pet", Name: "Blue Pet", Rarity: domain.RarityCollector, Type: domain.ItemTypePet, Value: domain.ParseItemValue("1,500")},
		{ID: "bone-cleaver", Name: "Bone Cleaver", Rarity: domain.RarityCollector, Type: domain.ItemTypeKnife, Value: domain.NewItemValue(210000)},
		{ID: "pebble", Name: "Pebble", Rarity: domain.RarityBasic, Type: "Misc", Value: domain.NewItemValue(500)},
	})
}

type sessionFixture struct {
	store  *session.Store
	trades *memory.TradeStore
	svc    trade.Service
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	cat := testCatalog()
	trades := memory.NewTradeStore()
	svc := trade.NewService(trades, cat, nil, time.Minute)
	return &sessionFixture{
		store:  session.NewStore(session.Config{CacheSize: 10, TTL: time.Hour}, cat, svc, memory.NewBlobStore()),
		trades: trades,
		svc:    svc,
	}
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// MockPendingLister mocks PendingLister
type MockPendingLister struct {
	mock.Mock
}

func (m *MockPendingLister) ListPending(ctx context.Context) ([]domain.TradeRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TradeRequest), args.Error(1)
}
