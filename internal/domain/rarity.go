package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is the classification tag used for filtering and display styling
type Rarity string

const (
	RarityBasic     Rarity = "basic"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityUltimate  Rarity = "ultimate"
	RarityMad       Rarity = "mad"
	RarityMythical  Rarity = "mythical"

	// RarityCollector marks collector items; the pets/knives/guns filters require it.
	RarityCollector Rarity = "Collector"
)

// Rarities lists every known rarity in display order
var Rarities = []Rarity{
	RarityBasic,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityUltimate,
	RarityMad,
	RarityMythical,
	RarityCollector,
}

// Label returns the capitalized display label ("legendary" -> "Legendary").
// A Caser is stateful, so one is built per call.
func (r Rarity) Label() string {
	return cases.Title(language.English).String(string(r))
}

// IsKnown reports whether r is one of the catalog rarities
func (r Rarity) IsKnown() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}
