package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumbiru/yumvalues/internal/catalog"
	"github.com/yumbiru/yumvalues/internal/database/memory"
	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/inventory"
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

type fixture struct {
	store  *Store
	blobs  *memory.BlobStore
	trades *memory.TradeStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat := testCatalog()
	blobs := memory.NewBlobStore()
	trades := memory.NewTradeStore()
	svc := trade.NewService(trades, cat, nil, time.Minute)
	return &fixture{
		store:  NewStore(Config{CacheSize: 10, TTL: time.Hour}, cat, svc, blobs),
		blobs:  blobs,
		trades: trades,
	}
}

func (f *fixture) open(t *testing.T, identity string) string {
	t.Helper()
	v, err := f.store.Open(context.Background(), "", identity)
	require.NoError(t, err)
	return v.SessionID
}

func (f *fixture) do(t *testing.T, id string, a Action) *View {
	t.Helper()
	v, err := f.store.Dispatch(context.Background(), id, a)
	require.NoError(t, err)
	return v
}

func TestOpen_RequiresIdentity(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.Open(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOpen_InitialView(t *testing.T) {
	f := newFixture(t)
	v, err := f.store.Open(context.Background(), "", "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, v.SessionID)
	assert.Equal(t, "alice", v.Identity)
	assert.Equal(t, domain.FilterAll, v.Filter)
	assert.Len(t, v.Items, 4)
	assert.Equal(t, "13k", v.Items[0].DisplayValue)
	assert.Equal(t, "Epic", v.Items[0].RarityLabel)
	assert.Equal(t, "0", v.Calculator.DisplayTotal)
	assert.Empty(t, v.Trade.Pending)
	assert.Equal(t, 1, f.store.Len())
}

func TestDispatch_UnknownSession(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.Dispatch(context.Background(), "nope", Action{Type: ActionSetSearch})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = f.store.View(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDispatch_UnknownAction(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")
	_, err := f.store.Dispatch(context.Background(), id, Action{Type: "dance"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDispatch_SearchAndFilter(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	v := f.do(t, id, Action{Type: ActionSetFilter, Filter: domain.FilterKnives})
	require.Len(t, v.Items, 1)
	assert.Equal(t, "bone-cleaver", v.Items[0].ID)

	v = f.do(t, id, Action{Type: ActionSetSearch, Text: "red"})
	assert.Empty(t, v.Items)

	v = f.do(t, id, Action{Type: ActionSetFilter, Filter: domain.FilterAll})
	require.Len(t, v.Items, 1)
	assert.Equal(t, "red-knife", v.Items[0].ID)

	_, err := f.store.Dispatch(context.Background(), id, Action{Type: ActionSetFilter, Filter: "shiny"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	v, err = f.store.View(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, v.Filter)
}

func TestDispatch_CalculatorSelection(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})
	v := f.do(t, id, Action{Type: ActionAdjustSelected, ItemID: "blue-pet", Delta: 1})
	assert.Equal(t, int64(3000), v.Calculator.Total)
	assert.Equal(t, "3.0k", v.Calculator.DisplayTotal)

	v = f.do(t, id, Action{Type: ActionToggleItem, ItemID: "pebble"})
	assert.Equal(t, int64(3500), v.Calculator.Total)
	for _, item := range v.Items {
		assert.Equal(t, item.ID == "blue-pet" || item.ID == "pebble", item.Selected, item.ID)
	}

	v = f.do(t, id, Action{Type: ActionAdjustSelected, ItemID: "blue-pet", Delta: -10})
	assert.Equal(t, 1, v.Calculator.Lines[0].Quantity)

	v = f.do(t, id, Action{Type: ActionSetSelectedQuantity, ItemID: "pebble", Quantity: 4})
	assert.Equal(t, int64(3500), v.Calculator.Total)

	v = f.do(t, id, Action{Type: ActionRemoveSelected, ItemID: "pebble"})
	assert.Len(t, v.Calculator.Lines, 1)

	v = f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})
	assert.Empty(t, v.Calculator.Lines)

	_, err := f.store.Dispatch(context.Background(), id, Action{Type: ActionClickItem, ItemID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestDispatch_AddSelectionToInventory(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	f.do(t, id, Action{Type: ActionToggleItem, ItemID: "blue-pet"})
	f.do(t, id, Action{Type: ActionSetSelectedQuantity, ItemID: "blue-pet", Quantity: 2})
	f.do(t, id, Action{Type: ActionAddSelectionToInventory})
	f.do(t, id, Action{Type: ActionToggleItem, ItemID: "blue-pet"})
	v := f.do(t, id, Action{Type: ActionAddSelectionToInventory})

	assert.Empty(t, v.Calculator.Lines)
	require.Len(t, v.Inventory.Lines, 1)
	assert.Equal(t, 3, v.Inventory.Lines[0].Quantity)
	assert.Equal(t, int64(4500), v.Inventory.Total)
	assert.Equal(t, "4.5k", v.Inventory.DisplayTotal)
	assert.Equal(t, 1, v.Inventory.Count)
}

func TestDispatch_InventoryEditing(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	f.do(t, id, Action{Type: ActionSetInventoryQuantity, ItemID: "pebble", Quantity: 3})
	v := f.do(t, id, Action{Type: ActionSetInventoryQuantity, ItemID: "red-knife", Quantity: 1})
	assert.Equal(t, 2, v.Inventory.Count)

	v = f.do(t, id, Action{Type: ActionSetInventorySearch, Text: "PEB"})
	require.Len(t, v.Inventory.Lines, 1)
	assert.Equal(t, "Pebble", v.Inventory.Lines[0].Name)
	assert.Equal(t, 2, v.Inventory.Count)

	v = f.do(t, id, Action{Type: ActionSetInventoryQuantity, ItemID: "pebble", Quantity: 0})
	assert.Empty(t, v.Inventory.Lines)

	v = f.do(t, id, Action{Type: ActionDeleteInventoryItem, ItemID: "red-knife"})
	assert.Equal(t, 0, v.Inventory.Count)
}

func TestDispatch_ClickRoutesToActiveTradeSide(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	f.do(t, id, Action{Type: ActionOpenTrading, Open: true})
	v := f.do(t, id, Action{Type: ActionClickItem, ItemID: "pebble"})
	assert.Len(t, v.Calculator.Lines, 1, "no side selected: toggles the calculator")

	f.do(t, id, Action{Type: ActionSelectTradeSide, Side: domain.TradeSideRight})
	f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})
	v = f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})

	require.Len(t, v.Trade.Right, 1)
	assert.Equal(t, 2, v.Trade.Right[0].Quantity)
	assert.Len(t, v.Calculator.Lines, 1)
	for _, item := range v.Items {
		assert.Equal(t, item.ID == "blue-pet", item.Selected, item.ID)
	}

	f.do(t, id, Action{Type: ActionOpenTrading, Open: false})
	v = f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})
	assert.Len(t, v.Calculator.Lines, 2, "closed panel routes clicks to the calculator")
}

func TestDispatch_TradeDeskEditing(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	f.do(t, id, Action{Type: ActionOpenTrading, Open: true})
	f.do(t, id, Action{Type: ActionSelectTradeSide, Side: domain.TradeSideLeft})
	f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})
	f.do(t, id, Action{Type: ActionClickItem, ItemID: "pebble"})
	v := f.do(t, id, Action{Type: ActionAdjustTradeItem, Side: domain.TradeSideLeft, ItemID: "pebble", Delta: 2})

	assert.Equal(t, int64(3000), v.Trade.LeftTotal)
	assert.Equal(t, int64(3000), v.Trade.Difference)
	assert.Equal(t, "3.0k", v.Trade.DisplayDifference)

	v = f.do(t, id, Action{Type: ActionRemoveTradeItem, Side: domain.TradeSideLeft, ItemID: "pebble"})
	assert.Len(t, v.Trade.Left, 1)

	v = f.do(t, id, Action{Type: ActionClearTradeSide, Side: domain.TradeSideLeft})
	assert.Empty(t, v.Trade.Left)

	_, err := f.store.Dispatch(context.Background(), id, Action{Type: ActionClearTradeSide, Side: "middle"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func proposeTrade(t *testing.T, f *fixture, id string, target string) *View {
	t.Helper()
	f.do(t, id, Action{Type: ActionOpenTrading, Open: true})
	f.do(t, id, Action{Type: ActionSelectTradeSide, Side: domain.TradeSideLeft})
	f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})
	f.do(t, id, Action{Type: ActionSelectTradeSide, Side: domain.TradeSideRight})
	f.do(t, id, Action{Type: ActionClickItem, ItemID: "red-knife"})
	f.do(t, id, Action{Type: ActionSetTarget, Text: target})
	return f.do(t, id, Action{Type: ActionPropose})
}

func TestDispatch_ProposeRequiresInventory(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	f.do(t, id, Action{Type: ActionOpenTrading, Open: true})
	f.do(t, id, Action{Type: ActionSelectTradeSide, Side: domain.TradeSideLeft})
	f.do(t, id, Action{Type: ActionClickItem, ItemID: "blue-pet"})
	f.do(t, id, Action{Type: ActionSetTarget, Text: "bob"})

	_, err := f.store.Dispatch(context.Background(), id, Action{Type: ActionPropose})
	require.ErrorIs(t, err, domain.ErrInsufficientInventory)
	assert.Contains(t, err.Error(), "Blue Pet")

	v, err := f.store.View(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, v.Trade.Left, 1, "desk kept on failure")
	assert.Equal(t, "bob", v.Trade.Target)
}

func TestDispatch_ProposeRequiresTarget(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")

	_, err := f.store.Dispatch(context.Background(), id, Action{Type: ActionPropose})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDispatch_ProposeAcceptDecline(t *testing.T) {
	f := newFixture(t)
	alice := f.open(t, "alice")
	bob := f.open(t, "bob")

	f.do(t, alice, Action{Type: ActionSetInventoryQuantity, ItemID: "blue-pet", Quantity: 2})
	v := proposeTrade(t, f, alice, "bob")

	assert.Empty(t, v.Trade.Left)
	assert.Empty(t, v.Trade.Right)
	assert.Equal(t, "", v.Trade.Target)
	require.Len(t, v.Trade.Pending, 1)
	pending := v.Trade.Pending[0]
	assert.Equal(t, "alice", pending.CreatedBy)
	assert.Equal(t, int64(1500), pending.YourValue)
	assert.Equal(t, int64(12500), pending.TheirValue)
	assert.Equal(t, "12.5k", pending.DisplayTheirValue)
	require.Len(t, v.Inventory.Lines, 1)
	assert.Equal(t, 1, v.Inventory.Lines[0].Quantity)

	v = f.do(t, bob, Action{Type: ActionAccept, TradeID: pending.ID})
	assert.Empty(t, v.Trade.Pending)
	require.Len(t, v.Inventory.Lines, 1)
	assert.Equal(t, "red-knife", v.Inventory.Lines[0].ItemID)

	_, err := f.store.Dispatch(context.Background(), alice, Action{Type: ActionDecline, TradeID: pending.ID})
	assert.ErrorIs(t, err, domain.ErrTradeNotPending)
	v, err = f.store.View(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Inventory.Count, "failed decline leaves the ledger alone")

	v = proposeTrade(t, f, alice, "carol")
	require.Len(t, v.Trade.Pending, 1)
	assert.Equal(t, 0, v.Inventory.Count)

	v = f.do(t, alice, Action{Type: ActionDecline, TradeID: v.Trade.Pending[0].ID})
	require.Len(t, v.Inventory.Lines, 1)
	assert.Equal(t, "blue-pet", v.Inventory.Lines[0].ItemID)
	assert.Equal(t, 1, v.Inventory.Lines[0].Quantity)

	_, err = f.store.Dispatch(context.Background(), alice, Action{Type: ActionAccept, TradeID: "missing"})
	assert.ErrorIs(t, err, domain.ErrTradeNotFound)

	f.do(t, alice, Action{Type: ActionRefreshPending})
}

func TestOpen_ResumeReloadsLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	v, err := f.store.Open(ctx, "fixed-id", "alice")
	require.NoError(t, err)
	f.do(t, v.SessionID, Action{Type: ActionSetInventoryQuantity, ItemID: "pebble", Quantity: 7})

	blob, found, err := f.blobs.Get(ctx, inventory.StorageKey("fixed-id"))
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"pebble":7}`, string(blob))

	assert.True(t, f.store.Close("fixed-id"))
	_, err = f.store.View(ctx, "fixed-id")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	v, err = f.store.Open(ctx, "fixed-id", "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Inventory.Count)
	assert.Equal(t, int64(3500), v.Inventory.Total)
}

func TestDispatch_ConcurrentActionsOnOneSession(t *testing.T) {
	f := newFixture(t)
	id := f.open(t, "alice")
	f.do(t, id, Action{Type: ActionToggleItem, ItemID: "pebble"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.store.Dispatch(context.Background(), id, Action{Type: ActionAdjustSelected, ItemID: "pebble", Delta: 1})
		}()
	}
	wg.Wait()

	v, err := f.store.View(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 21, v.Calculator.Lines[0].Quantity)
}

func TestDispatch_DeclineOnlyByProposer(t *testing.T) {
	f := newFixture(t)
	alice := f.open(t, "alice")
	bob := f.open(t, "bob")

	f.do(t, alice, Action{Type: ActionSetInventoryQuantity, ItemID: "blue-pet", Quantity: 1})
	v := proposeTrade(t, f, alice, "bob")
	require.Len(t, v.Trade.Pending, 1)
	tradeID := v.Trade.Pending[0].ID
	require.Equal(t, 0, v.Inventory.Count)

	_, err := f.store.Dispatch(context.Background(), bob, Action{Type: ActionDecline, TradeID: tradeID})
	require.ErrorIs(t, err, domain.ErrNotTradeOwner)

	v, err = f.store.View(context.Background(), bob)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Inventory.Count, "bob gains nothing")
	require.Len(t, v.Trade.Pending, 1, "trade stays pending")

	v, err = f.store.View(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Inventory.Count)

	v = f.do(t, alice, Action{Type: ActionDecline, TradeID: tradeID})
	require.Len(t, v.Inventory.Lines, 1)
	assert.Equal(t, "blue-pet", v.Inventory.Lines[0].ItemID)
	assert.Equal(t, 1, v.Inventory.Lines[0].Quantity)
}

func TestOpen_ResumeRejectsOtherIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.store.Open(ctx, "alice-sess", "alice")
	require.NoError(t, err)

	v, err := f.store.Open(ctx, "alice-sess", "mallory")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, v)

	v, err = f.store.Open(ctx, "alice-sess", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", v.Identity)
}

func TestStore_LocksTrackLiveSessions(t *testing.T) {
	cat := testCatalog()
	svc := trade.NewService(memory.NewTradeStore(), cat, nil, time.Minute)
	store := NewStore(Config{CacheSize: 2, TTL: time.Hour}, cat, svc, memory.NewBlobStore())
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		_, err := store.View(ctx, fmt.Sprintf("bogus-%d", i))
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
		_, err = store.Dispatch(ctx, fmt.Sprintf("bogus-%d", i), Action{Type: ActionSetSearch})
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
	}
	assert.Equal(t, 0, store.locks.Len(), "unknown ids never get a lock")

	for _, id := range []string{"s1", "s2", "s3"} {
		_, err := store.Open(ctx, id, "alice")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 2, store.locks.Len(), "evicted session drops its lock")

	assert.True(t, store.Close("s3"))
	assert.Equal(t, 1, store.locks.Len())
}
