package catalog

import (
	"strings"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// Catalog is the immutable, in-memory item list with an id index
type Catalog struct {
	items       []domain.Item
	byID        map[string]int
	version     string
	lastUpdated string
}

// New builds a catalog from items. Later duplicates of an id are ignored.
func New(items []domain.Item) *Catalog {
	c := &Catalog{
		items: make([]domain.Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if _, dup := c.byID[item.ID]; dup {
			continue
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c
}

// Lookup resolves an item id
func (c *Catalog) Lookup(id string) (domain.Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Item{}, false
	}
	return c.items[idx], true
}

// Name returns the display name for id, or id itself when unknown
func (c *Catalog) Name(id string) string {
	if item, ok := c.Lookup(id); ok {
		return item.Name
	}
	return id
}

// All returns a copy of every item in catalog order
func (c *Catalog) All() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// Version returns the catalog document version
func (c *Catalog) Version() string {
	return c.version
}

// LastUpdated returns the human-readable last update stamp of the catalog
func (c *Catalog) LastUpdated() string {
	return c.lastUpdated
}

// Filter returns items matching both the name search and the filter selector
func (c *Catalog) Filter(filter domain.Filter, search string) []domain.Item {
	needle := strings.ToLower(search)
	out := make([]domain.Item, 0, len(c.items))
	for _, item := range c.items {
		if Matches(item, filter, needle) {
			out = append(out, item)
		}
	}
	return out
}

// Matches is the single-pass catalog predicate. needle must already be lower case.
// Rarity tiers select on rarity alone; pets/knives/guns also require the
// Collector marker. Unknown filters behave like "all".
func Matches(item domain.Item, filter domain.Filter, needle string) bool {
	if !strings.Contains(strings.ToLower(item.Name), needle) {
		return false
	}

	if tier, ok := filter.RarityTier(); ok {
		return item.Rarity == tier
	}

	if typ, ok := filter.CollectorType(); ok {
		return item.Rarity == domain.RarityCollector && item.Type == typ
	}

	return true
}
