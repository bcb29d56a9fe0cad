package domain

// Item is a catalog entry. Items are immutable once the catalog is loaded.
type Item struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Rarity      Rarity    `json:"rarity" yaml:"rarity"`
	Type        ItemType  `json:"type" yaml:"type"`
	Value       ItemValue `json:"value" yaml:"value"`
	Description string    `json:"description" yaml:"description"`
	Origin      string    `json:"origin" yaml:"origin"`
	Effect      *string   `json:"effect,omitempty" yaml:"effect,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// NumericValue returns the parsed integer value of the item
func (i Item) NumericValue() int64 {
	return i.Value.Int()
}

// ItemType is the free-form category of an item (Pet, Knife, Gun, ...)
type ItemType string

const (
	ItemTypePet   ItemType = "Pet"
	ItemTypeKnife ItemType = "Knife"
	ItemTypeGun   ItemType = "Gun"
)
