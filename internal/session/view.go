package session

import (
	"context"
	"time"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// View is the render-ready projection of a session
type View struct {
	SessionID     string                `json:"session_id"`
	Identity      string                `json:"identity"`
	Search        string                `json:"search"`
	Filter        domain.Filter         `json:"filter"`
	FilterButtons []domain.FilterButton `json:"filter_buttons"`
	Items         []ItemView            `json:"items"`
	Calculator    CalculatorView        `json:"calculator"`
	Inventory     InventoryView         `json:"inventory"`
	Trade         TradeView             `json:"trade"`
}

// ItemView is a catalog card
type ItemView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Rarity       domain.Rarity   `json:"rarity"`
	RarityLabel  string          `json:"rarity_label"`
	Type         domain.ItemType `json:"type"`
	Value        int64           `json:"value"`
	DisplayValue string          `json:"display_value"`
	Description  string          `json:"description"`
	Origin       string          `json:"origin"`
	Effect       *string         `json:"effect,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Selected     bool            `json:"selected"`
}

// LineView is one quantity line of the calculator, a trade side or a pending trade
type LineView struct {
	ItemID       string `json:"item_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Value        int64  `json:"value"`
	Subtotal     int64  `json:"subtotal"`
	DisplayValue string `json:"display_value"`
}

// CalculatorView is the selection panel
type CalculatorView struct {
	Lines        []LineView `json:"lines"`
	Total        int64      `json:"total"`
	DisplayTotal string     `json:"display_total"`
}

// InventoryView is the ledger panel
type InventoryView struct {
	Search       string     `json:"search"`
	Lines        []LineView `json:"lines"`
	Count        int        `json:"count"`
	Total        int64      `json:"total"`
	DisplayTotal string     `json:"display_total"`
}

// TradeView is the trade panel
type TradeView struct {
	Open              bool               `json:"open"`
	ActiveSide        domain.TradeSide   `json:"active_side"`
	Target            string             `json:"target"`
	Left              []LineView         `json:"left"`
	Right             []LineView         `json:"right"`
	LeftTotal         int64              `json:"left_total"`
	RightTotal        int64              `json:"right_total"`
	Difference        int64              `json:"difference"`
	DisplayLeftTotal  string             `json:"display_left_total"`
	DisplayRightTotal string             `json:"display_right_total"`
	DisplayDifference string             `json:"display_difference"`
	Pending           []PendingTradeView `json:"pending"`
	PendingError      string             `json:"pending_error,omitempty"`
}

// PendingTradeView is one open trade request. YourValue is the left side.
type PendingTradeView struct {
	ID                string     `json:"id"`
	CreatedAt         time.Time  `json:"created_at"`
	CreatedBy         string     `json:"created_by"`
	TargetDisplayName string     `json:"target_display_name"`
	Left              []LineView `json:"left"`
	Right             []LineView `json:"right"`
	YourValue         int64      `json:"your_value"`
	TheirValue        int64      `json:"their_value"`
	DisplayYourValue  string     `json:"display_your_value"`
	DisplayTheirValue string     `json:"display_their_value"`
}

func (s *Store) render(ctx context.Context, st *State) *View {
	v := &View{
		SessionID:     st.ID,
		Identity:      st.Identity,
		Search:        st.Search,
		Filter:        st.Filter,
		FilterButtons: domain.FilterButtons,
		Items:         make([]ItemView, 0),
	}

	routeToDesk := st.TradingOpen && st.Desk.ActiveSide() != ""
	for _, item := range s.catalog.Filter(st.Filter, st.Search) {
		selected := st.Selection.Contains(item.ID)
		if routeToDesk {
			selected = st.Desk.ActiveContains(item.ID)
		}
		v.Items = append(v.Items, itemView(item, selected))
	}

	calc := st.Selection.Items()
	v.Calculator.Lines = s.lines(calc)
	v.Calculator.Total = valuation.Total(s.catalog, calc)
	v.Calculator.DisplayTotal = valuation.FormatPrecise(v.Calculator.Total)

	v.Inventory.Search = st.InventorySearch
	v.Inventory.Lines = make([]LineView, 0)
	for _, e := range st.Ledger.Entries(s.catalog, st.InventorySearch) {
		v.Inventory.Lines = append(v.Inventory.Lines, s.line(domain.QuantitySelection{ItemID: e.Item.ID, Quantity: e.Quantity}))
	}
	v.Inventory.Count = st.Ledger.Count()
	v.Inventory.Total = valuation.LedgerTotal(s.catalog, st.Ledger.Snapshot())
	v.Inventory.DisplayTotal = valuation.FormatPrecise(v.Inventory.Total)

	left, right, diff := st.Desk.Totals(s.catalog)
	v.Trade = TradeView{
		Open:              st.TradingOpen,
		ActiveSide:        st.Desk.ActiveSide(),
		Target:            st.Desk.Target(),
		Left:              s.lines(st.Desk.Left()),
		Right:             s.lines(st.Desk.Right()),
		LeftTotal:         left,
		RightTotal:        right,
		Difference:        diff,
		DisplayLeftTotal:  valuation.FormatPrecise(left),
		DisplayRightTotal: valuation.FormatPrecise(right),
		DisplayDifference: valuation.FormatPrecise(diff),
		Pending:           make([]PendingTradeView, 0),
	}

	pending, err := s.trades.ListPending(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPendingListFail, "error", err)
		v.Trade.PendingError = err.Error()
	}
	for _, req := range pending {
		v.Trade.Pending = append(v.Trade.Pending, s.pendingView(req))
	}

	return v
}

func itemView(item domain.Item, selected bool) ItemView {
	return ItemView{
		ID:           item.ID,
		Name:         item.Name,
		Rarity:       item.Rarity,
		RarityLabel:  item.Rarity.Label(),
		Type:         item.Type,
		Value:        item.NumericValue(),
		DisplayValue: valuation.FormatCompact(item.NumericValue()),
		Description:  item.Description,
		Origin:       item.Origin,
		Effect:       item.Effect,
		ImageURL:     item.ImageURL,
		Selected:     selected,
	}
}

func (s *Store) line(sel domain.QuantitySelection) LineView {
	var value int64
	if item, ok := s.catalog.Lookup(sel.ItemID); ok {
		value = item.NumericValue()
	}
	return LineView{
		ItemID:       sel.ItemID,
		Name:         s.catalog.Name(sel.ItemID),
		Quantity:     sel.Quantity,
		Value:        value,
		Subtotal:     value * int64(sel.Quantity),
		DisplayValue: valuation.FormatCompact(value),
	}
}

func (s *Store) lines(sels []domain.QuantitySelection) []LineView {
	out := make([]LineView, 0, len(sels))
	for _, sel := range sels {
		out = append(out, s.line(sel))
	}
	return out
}

func (s *Store) pendingView(req domain.TradeRequest) PendingTradeView {
	yours := valuation.Total(s.catalog, req.LeftItems)
	theirs := valuation.Total(s.catalog, req.RightItems)
	return PendingTradeView{
		ID:                req.ID,
		CreatedAt:         req.CreatedAt,
		CreatedBy:         req.CreatedBy,
		TargetDisplayName: req.TargetDisplayName,
		Left:              s.lines(req.LeftItems),
		Right:             s.lines(req.RightItems),
		YourValue:         yours,
		TheirValue:        theirs,
		DisplayYourValue:  valuation.FormatPrecise(yours),
		DisplayTheirValue: valuation.FormatPrecise(theirs),
	}
}
