package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/yumbiru/yumvalues/internal/catalog"
	"github.com/yumbiru/yumvalues/internal/config"
)

// LoadCatalog reads and validates the item catalog named by the config
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	c, err := catalog.NewLoader(cfg.CatalogSchemaPath).Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	slog.Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"items", c.Len(),
		"version", c.Version(),
		"last_updated", c.LastUpdated())
	return c, nil
}
