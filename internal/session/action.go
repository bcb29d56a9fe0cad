package session

import "github.com/yumbiru/yumvalues/internal/domain"

// ActionType names a user intent
type ActionType string

const (
	// Catalog browsing
	ActionSetSearch ActionType = "set_search"
	ActionSetFilter ActionType = "set_filter"
	ActionClickItem ActionType = "click_item"

	// Calculator selection
	ActionToggleItem          ActionType = "toggle_item"
	ActionAdjustSelected      ActionType = "adjust_selected"
	ActionSetSelectedQuantity ActionType = "set_selected_quantity"
	ActionRemoveSelected      ActionType = "remove_selected"
	ActionClearSelection      ActionType = "clear_selection"

	// Inventory ledger
	ActionAddSelectionToInventory ActionType = "add_selection_to_inventory"
	ActionSetInventoryQuantity    ActionType = "set_inventory_quantity"
	ActionDeleteInventoryItem     ActionType = "delete_inventory_item"
	ActionSetInventorySearch      ActionType = "set_inventory_search"

	// Trade desk and lifecycle
	ActionOpenTrading     ActionType = "open_trading"
	ActionSelectTradeSide ActionType = "select_trade_side"
	ActionAdjustTradeItem ActionType = "adjust_trade_item"
	ActionRemoveTradeItem ActionType = "remove_trade_item"
	ActionClearTradeSide  ActionType = "clear_trade_side"
	ActionSetTarget       ActionType = "set_target"
	ActionPropose         ActionType = "propose"
	ActionAccept          ActionType = "accept"
	ActionDecline         ActionType = "decline"
	ActionRefreshPending  ActionType = "refresh_pending"
)

// Action is one intent applied to a session. Only the fields its Type reads
// are meaningful.
type Action struct {
	Type     ActionType       `json:"type" validate:"required"`
	ItemID   string           `json:"item_id,omitempty"`
	Text     string           `json:"text,omitempty" validate:"max=200"`
	Filter   domain.Filter    `json:"filter,omitempty" validate:"omitempty,catalogfilter"`
	Side     domain.TradeSide `json:"side,omitempty" validate:"omitempty,tradeside"`
	Delta    int              `json:"delta,omitempty"`
	Quantity int              `json:"quantity,omitempty"`
	Open     bool             `json:"open,omitempty"`
	TradeID  string           `json:"trade_id,omitempty"`
}
