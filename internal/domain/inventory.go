package domain

// QuantitySelection is one entry of a calculator selection or a trade side
type QuantitySelection struct {
	ItemID   string `json:"id"`
	Quantity int    `json:"quantity"`
}

// InventoryEntry is one ledger line resolved against the catalog
type InventoryEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}
