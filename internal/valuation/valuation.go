// Package valuation sums item values and formats them for display.
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// ItemLookup resolves catalog items by id
type ItemLookup interface {
	Lookup(id string) (domain.Item, bool)
}

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Total returns Σ value × quantity over selections whose id resolves.
// Unknown ids contribute nothing.
func Total(items ItemLookup, selections []domain.QuantitySelection) int64 {
	var total int64
	for _, sel := range selections {
		item, ok := items.Lookup(sel.ItemID)
		if !ok {
			continue
		}
		total += item.NumericValue() * int64(sel.Quantity)
	}
	return total
}

// Difference returns |Total(left) − Total(right)|
func Difference(items ItemLookup, left, right []domain.QuantitySelection) int64 {
	d := Total(items, left) - Total(items, right)
	if d < 0 {
		return -d
	}
	return d
}

// LedgerTotal sums value × quantity over an id → quantity map
func LedgerTotal(items ItemLookup, entries map[string]int) int64 {
	var total int64
	for id, qty := range entries {
		item, ok := items.Lookup(id)
		if !ok {
			continue
		}
		total += item.NumericValue() * int64(qty)
	}
	return total
}

// FormatPrecise renders totals: 1234567 → "1.235m", 1500 → "1.5k", 500 → "500".
func FormatPrecise(value int64) string {
	return format(value, 1)
}

// FormatCompact renders card badges: 1500 → "2k". Millions keep three places.
func FormatCompact(value int64) string {
	return format(value, 0)
}

// format rounds half away from zero, which is what decimal.StringFixed does.
func format(value int64, thousandPlaces int32) string {
	d := decimal.NewFromInt(value)
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(million):
		return d.Div(million).StringFixed(3) + "m"
	case abs.GreaterThanOrEqual(thousand):
		return d.Div(thousand).StringFixed(thousandPlaces) + "k"
	default:
		return d.String()
	}
}
