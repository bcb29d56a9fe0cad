// Package selection implements the ordered quantity list shared by the
// calculator and both trade sides. Quantities never drop below 1; removal is
// always explicit.
package selection

import "github.com/yumbiru/yumvalues/internal/domain"

// List is an ordered set of item ids with quantities ≥ 1.
// The zero value is an empty list ready to use.
type List struct {
	entries []domain.QuantitySelection
}

// FromItems builds a list, dropping non-positive quantities and merging repeats
func FromItems(items []domain.QuantitySelection) *List {
	l := &List{}
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		if i := l.index(it.ItemID); i >= 0 {
			l.entries[i].Quantity += it.Quantity
			continue
		}
		l.entries = append(l.entries, it)
	}
	return l
}

func (l *List) index(id string) int {
	for i, e := range l.entries {
		if e.ItemID == id {
			return i
		}
	}
	return -1
}

// Toggle adds id with quantity 1, or removes it when already present.
// Returns true when the id is present afterwards.
func (l *List) Toggle(id string) bool {
	if i := l.index(id); i >= 0 {
		l.removeAt(i)
		return false
	}
	l.entries = append(l.entries, domain.QuantitySelection{ItemID: id, Quantity: 1})
	return true
}

// Add inserts id with quantity 1, or increments it
func (l *List) Add(id string) {
	if i := l.index(id); i >= 0 {
		l.entries[i].Quantity++
		return
	}
	l.entries = append(l.entries, domain.QuantitySelection{ItemID: id, Quantity: 1})
}

// Adjust applies max(1, q+delta). Missing ids are ignored.
func (l *List) Adjust(id string, delta int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.entries[i].Quantity = max(1, l.entries[i].Quantity+delta)
	return true
}

// Set applies max(1, q). Missing ids are ignored.
func (l *List) Set(id string, quantity int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.entries[i].Quantity = max(1, quantity)
	return true
}

// Remove drops id from the list
func (l *List) Remove(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

func (l *List) removeAt(i int) {
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
}

// Clear empties the list
func (l *List) Clear() {
	l.entries = nil
}

// Contains reports whether id is in the list
func (l *List) Contains(id string) bool {
	return l.index(id) >= 0
}

// Quantity returns the quantity held for id, 0 if absent
func (l *List) Quantity(id string) int {
	if i := l.index(id); i >= 0 {
		return l.entries[i].Quantity
	}
	return 0
}

// Len returns the number of distinct ids
func (l *List) Len() int {
	return len(l.entries)
}

// Items returns a copy of the entries in insertion order
func (l *List) Items() []domain.QuantitySelection {
	out := make([]domain.QuantitySelection, len(l.entries))
	copy(out, l.entries)
	return out
}
