package session

import (
	"time"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/inventory"
	"github.com/yumbiru/yumvalues/internal/selection"
	"github.com/yumbiru/yumvalues/internal/trade"
)

// State is everything one session owns. It is only touched while the
// session lock is held.
type State struct {
	ID        string
	Identity  string
	CreatedAt time.Time
	UpdatedAt time.Time

	Search string
	Filter domain.Filter

	Selection selection.List

	Ledger          *inventory.Ledger
	InventorySearch string

	TradingOpen bool
	Desk        trade.Desk
}
