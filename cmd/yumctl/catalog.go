package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/yumbiru/yumvalues/internal/catalog"
	"github.com/yumbiru/yumvalues/internal/config"
	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// catalogCmd lists catalog items matching a filter and search text.
type catalogCmd struct {
	filter string
	search string
	path   string
	schema string
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list catalog items by filter and name" }
func (*catalogCmd) Usage() string {
	return `yumctl catalog [-filter <filter>] [-search <text>] [-path <file>] [-schema <file>]

  Validates the catalog file and prints the matching items in catalog order.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.filter, "filter", string(domain.FilterAll), "catalog filter (all, basic, ..., mythical, pets, knives, guns)")
	f.StringVar(&c.search, "search", "", "case-insensitive name substring")
	f.StringVar(&c.path, "path", "", "catalog file (defaults to CATALOG_PATH)")
	f.StringVar(&c.schema, "schema", "", "catalog JSON schema (defaults to CATALOG_SCHEMA_PATH)")
}

func (c *catalogCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := domain.Filter(strings.ToLower(c.filter))
	if !filter.IsValid() {
		fail("Unknown filter %q", c.filter)
		return subcommands.ExitUsageError
	}

	cat, err := loadCatalog(c.path, c.schema)
	if err != nil {
		fail("Error loading catalog: %v", err)
		return subcommands.ExitFailure
	}

	printMarkdown(catalogMarkdown(cat, filter, c.search))
	return subcommands.ExitSuccess
}

func catalogMarkdown(cat *catalog.Catalog, filter domain.Filter, search string) string {
	items := cat.Filter(filter, search)
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Name, it.Rarity.Label(), string(it.Type), valuation.FormatPrecise(it.NumericValue())})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Catalog %s\n\n", cat.Version())
	fmt.Fprintf(&b, "_%d of %d items, last updated %s_\n\n", len(items), cat.Len(), cat.LastUpdated())
	if len(items) == 0 {
		b.WriteString("No items match.\n")
		return b.String()
	}
	b.WriteString(markdownTable([]string{"Name", "Rarity", "Type", "Value"}, rows))
	return b.String()
}

// loadCatalog reads the catalog named by the flags, or by the environment
// when a flag is empty
func loadCatalog(path, schema string) (*catalog.Catalog, error) {
	if path == "" || schema == "" {
		cfg, err := config.LoadForTooling()
		if err != nil {
			return nil, err
		}
		if path == "" {
			path = cfg.CatalogPath
		}
		if schema == "" {
			schema = cfg.CatalogSchemaPath
		}
	}
	return catalog.NewLoader(schema).Load(path)
}
