package session

import (
	"context"
	"fmt"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/inventory"
	"github.com/yumbiru/yumvalues/internal/trade"
)

// apply validates and then mutates st. Validation failures return before
// anything is touched.
func (s *Store) apply(ctx context.Context, st *State, a Action) error {
	switch a.Type {
	case ActionSetSearch:
		st.Search = a.Text

	case ActionSetFilter:
		if !a.Filter.IsValid() {
			return fmt.Errorf("%w: "+ErrMsgInvalidFilterFmt, domain.ErrValidation, a.Filter)
		}
		st.Filter = a.Filter
		if st.Filter == "" {
			st.Filter = domain.FilterAll
		}

	case ActionClickItem:
		if err := s.requireItem(a.ItemID); err != nil {
			return err
		}
		if st.TradingOpen && st.Desk.AddToActive(a.ItemID) {
			return nil
		}
		st.Selection.Toggle(a.ItemID)

	case ActionToggleItem:
		if err := s.requireItem(a.ItemID); err != nil {
			return err
		}
		st.Selection.Toggle(a.ItemID)

	case ActionAdjustSelected:
		st.Selection.Adjust(a.ItemID, a.Delta)

	case ActionSetSelectedQuantity:
		st.Selection.Set(a.ItemID, a.Quantity)

	case ActionRemoveSelected:
		st.Selection.Remove(a.ItemID)

	case ActionClearSelection:
		st.Selection.Clear()

	case ActionAddSelectionToInventory:
		st.Ledger.Merge(ctx, st.Selection.Items())
		st.Selection.Clear()

	case ActionSetInventoryQuantity:
		if err := s.requireItem(a.ItemID); err != nil {
			return err
		}
		st.Ledger.SetQuantity(ctx, a.ItemID, a.Quantity)

	case ActionDeleteInventoryItem:
		st.Ledger.Delete(ctx, a.ItemID)

	case ActionSetInventorySearch:
		st.InventorySearch = a.Text

	case ActionOpenTrading:
		st.TradingOpen = a.Open

	case ActionSelectTradeSide:
		return st.Desk.SelectSide(a.Side)

	case ActionAdjustTradeItem:
		return st.Desk.Adjust(a.Side, a.ItemID, a.Delta)

	case ActionRemoveTradeItem:
		return st.Desk.Remove(a.Side, a.ItemID)

	case ActionClearTradeSide:
		return st.Desk.Clear(a.Side)

	case ActionSetTarget:
		st.Desk.SetTarget(a.Text)

	case ActionPropose:
		if _, err := s.trades.Propose(ctx, st.Desk.Proposal(st.Identity), st.Ledger); err != nil {
			return err
		}
		st.Desk.Reset()

	case ActionAccept:
		_, err := s.trades.Accept(ctx, a.TradeID, st.Ledger)
		return err

	case ActionDecline:
		_, err := s.trades.Decline(ctx, a.TradeID, st.Identity, st.Ledger)
		return err

	case ActionRefreshPending:
		_, err := s.trades.RefreshPending(ctx)
		return err

	default:
		return fmt.Errorf("%w: "+ErrMsgUnknownActionFmt, domain.ErrValidation, a.Type)
	}
	return nil
}

func (s *Store) requireItem(id string) error {
	if _, ok := s.catalog.Lookup(id); !ok {
		return fmt.Errorf("%w: "+ErrMsgUnknownItemFmt, domain.ErrUnknownItem, id)
	}
	return nil
}

var _ trade.Ledger = (*inventory.Ledger)(nil)
