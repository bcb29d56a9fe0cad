package trade

import (
	"fmt"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/selection"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// Desk holds a trade proposal while it is being edited. Nothing on the desk
// leaves the session until it is proposed.
type Desk struct {
	left   selection.List
	right  selection.List
	active domain.TradeSide
	target string
}

// ParseSide validates a side name. The empty string selects no side.
func ParseSide(s string) (domain.TradeSide, error) {
	switch side := domain.TradeSide(s); side {
	case domain.TradeSideLeft, domain.TradeSideRight, "":
		return side, nil
	default:
		return "", fmt.Errorf("%w: unknown trade side %q", domain.ErrValidation, s)
	}
}

func (d *Desk) side(side domain.TradeSide) (*selection.List, error) {
	switch side {
	case domain.TradeSideLeft:
		return &d.left, nil
	case domain.TradeSideRight:
		return &d.right, nil
	default:
		return nil, fmt.Errorf("%w: unknown trade side %q", domain.ErrValidation, side)
	}
}

// SelectSide makes side the target of item clicks. "" deselects.
func (d *Desk) SelectSide(side domain.TradeSide) error {
	if _, err := ParseSide(string(side)); err != nil {
		return err
	}
	d.active = side
	return nil
}

// ActiveSide returns the selected side, "" when none
func (d *Desk) ActiveSide() domain.TradeSide {
	return d.active
}

// AddToActive adds id to the active side with quantity 1, or +1.
// Returns false when no side is active.
func (d *Desk) AddToActive(id string) bool {
	list, err := d.side(d.active)
	if err != nil {
		return false
	}
	list.Add(id)
	return true
}

// ActiveContains reports whether the active side holds id
func (d *Desk) ActiveContains(id string) bool {
	list, err := d.side(d.active)
	if err != nil {
		return false
	}
	return list.Contains(id)
}

// Adjust changes the quantity of id on side, never below 1
func (d *Desk) Adjust(side domain.TradeSide, id string, delta int) error {
	list, err := d.side(side)
	if err != nil {
		return err
	}
	list.Adjust(id, delta)
	return nil
}

// Remove drops id from side
func (d *Desk) Remove(side domain.TradeSide, id string) error {
	list, err := d.side(side)
	if err != nil {
		return err
	}
	list.Remove(id)
	return nil
}

// Clear empties side
func (d *Desk) Clear(side domain.TradeSide) error {
	list, err := d.side(side)
	if err != nil {
		return err
	}
	list.Clear()
	return nil
}

// SetTarget sets the display name of the counterparty
func (d *Desk) SetTarget(name string) {
	d.target = name
}

// Target returns the counterparty display name
func (d *Desk) Target() string {
	return d.target
}

// Left returns your offered items
func (d *Desk) Left() []domain.QuantitySelection {
	return d.left.Items()
}

// Right returns the requested items
func (d *Desk) Right() []domain.QuantitySelection {
	return d.right.Items()
}

// Proposal builds the proposal for identity from the desk contents
func (d *Desk) Proposal(identity string) domain.TradeProposal {
	return domain.TradeProposal{
		CreatedBy:         identity,
		TargetDisplayName: d.target,
		LeftItems:         d.left.Items(),
		RightItems:        d.right.Items(),
	}
}

// Reset clears both sides and the target name after a successful proposal.
// The active side is kept.
func (d *Desk) Reset() {
	d.left.Clear()
	d.right.Clear()
	d.target = ""
}

// Totals returns the value of each side and their absolute difference
func (d *Desk) Totals(items valuation.ItemLookup) (left, right, diff int64) {
	left = valuation.Total(items, d.left.Items())
	right = valuation.Total(items, d.right.Items())
	diff = left - right
	if diff < 0 {
		diff = -diff
	}
	return left, right, diff
}
