package domain

// Filter is the mutually exclusive catalog filter selector
type Filter string

const (
	FilterAll       Filter = "all"
	FilterBasic     Filter = "basic"
	FilterUncommon  Filter = "uncommon"
	FilterRare      Filter = "rare"
	FilterEpic      Filter = "epic"
	FilterLegendary Filter = "legendary"
	FilterUltimate  Filter = "ultimate"
	FilterMad       Filter = "mad"
	FilterMythical  Filter = "mythical"
	FilterPets      Filter = "pets"
	FilterKnives    Filter = "knives"
	FilterGuns      Filter = "guns"
)

// rarityFilters maps tier filters onto the rarity they select
var rarityFilters = map[Filter]Rarity{
	FilterBasic:     RarityBasic,
	FilterUncommon:  RarityUncommon,
	FilterRare:      RarityRare,
	FilterEpic:      RarityEpic,
	FilterLegendary: RarityLegendary,
	FilterUltimate:  RarityUltimate,
	FilterMad:       RarityMad,
	FilterMythical:  RarityMythical,
}

// collectorFilters maps collector sub-type filters onto the item type they select
var collectorFilters = map[Filter]ItemType{
	FilterPets:   ItemTypePet,
	FilterKnives: ItemTypeKnife,
	FilterGuns:   ItemTypeGun,
}

// RarityTier returns the rarity selected by a tier filter
func (f Filter) RarityTier() (Rarity, bool) {
	r, ok := rarityFilters[f]
	return r, ok
}

// CollectorType returns the item type selected by a collector sub-type filter
func (f Filter) CollectorType() (ItemType, bool) {
	t, ok := collectorFilters[f]
	return t, ok
}

// IsValid checks if a filter string is valid (empty string is valid = all)
func (f Filter) IsValid() bool {
	if f == "" || f == FilterAll {
		return true
	}
	if _, ok := rarityFilters[f]; ok {
		return true
	}
	_, ok := collectorFilters[f]
	return ok
}

// FilterButton is a labelled filter choice offered to clients
type FilterButton struct {
	Label string `json:"label"`
	Value Filter `json:"value"`
	Color string `json:"color"`
}

// FilterButtons is the filter menu in display order. The "Basic" button
// selects the uncommon tier.
var FilterButtons = []FilterButton{
	{Label: "All Items", Value: FilterAll, Color: "purple"},
	{Label: "Mythical", Value: FilterMythical, Color: "indigo"},
	{Label: "Mad", Value: FilterMad, Color: "red"},
	{Label: "Ultimate", Value: FilterUltimate, Color: "black"},
	{Label: "Legendary", Value: FilterLegendary, Color: "orange"},
	{Label: "Epic", Value: FilterEpic, Color: "yellow"},
	{Label: "Rare", Value: FilterRare, Color: "green"},
	{Label: "Basic", Value: FilterUncommon, Color: "blue"},
	{Label: "Pets", Value: FilterPets, Color: "purple"},
	{Label: "Knives", Value: FilterKnives, Color: "blue"},
	{Label: "Guns", Value: FilterGuns, Color: "green"},
}
