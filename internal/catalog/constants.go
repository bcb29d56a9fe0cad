package catalog

// Schema and data paths
const (
	SchemaPath  = "configs/schemas/catalog.schema.json"
	DefaultPath = "configs/catalog/items.json"
)

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgNoItemsDefined     = "no items defined"
	ErrMsgEmptyID            = "item at index %d has empty id"
	ErrMsgEmptyName          = "item '%s' has empty name"
	ErrMsgNegativeValue      = "item '%s' has negative value"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
	LogMsgUnknownRarity = "Catalog item has unknown rarity"
)
