package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/yumbiru/yumvalues/internal/catalog"
	"github.com/yumbiru/yumvalues/internal/config"
	"github.com/yumbiru/yumvalues/internal/database"
	"github.com/yumbiru/yumvalues/internal/database/sqlite"
	"github.com/yumbiru/yumvalues/internal/inventory"
	"github.com/yumbiru/yumvalues/internal/repository"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// inventoryCmd lists stored ledgers or dumps one of them.
type inventoryCmd struct {
	path   string
	search string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "inspect stored session inventories" }
func (*inventoryCmd) Usage() string {
	return `yumctl inventory [-path <catalog>] [-search <text>] [<session-id>]

  Without arguments lists every session holding a stored inventory.
  With a session id prints that inventory and its total value.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "catalog file (defaults to CATALOG_PATH)")
	f.StringVar(&c.search, "search", "", "case-insensitive name substring")
}

func (c *inventoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fail("%s", c.Usage())
		return subcommands.ExitUsageError
	}

	cfg, err := config.LoadForTooling()
	if err != nil {
		fail("Error loading config: %v", err)
		return subcommands.ExitFailure
	}
	db, err := database.OpenLocal(ctx, cfg.LocalDBPath)
	if err != nil {
		fail("Error opening %s: %v", cfg.LocalDBPath, err)
		return subcommands.ExitFailure
	}
	defer db.Close()
	blobs := sqlite.NewBlobStore(db)

	if f.NArg() == 0 {
		md, err := sessionsMarkdown(ctx, blobs)
		if err != nil {
			fail("Error listing inventories: %v", err)
			return subcommands.ExitFailure
		}
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	path := c.path
	if path == "" {
		path = cfg.CatalogPath
	}
	cat, err := catalog.NewLoader(cfg.CatalogSchemaPath).Load(path)
	if err != nil {
		fail("Error loading catalog: %v", err)
		return subcommands.ExitFailure
	}

	printMarkdown(ledgerMarkdown(ctx, blobs, cat, f.Arg(0), c.search))
	return subcommands.ExitSuccess
}

func sessionsMarkdown(ctx context.Context, blobs repository.BlobStore) (string, error) {
	prefix := inventory.StorageKey("")
	keys, err := blobs.Keys(ctx, prefix)
	if err != nil {
		return "", err
	}
	if len(keys) == 0 {
		return "No stored inventories.\n", nil
	}

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		ledger := inventory.Load(ctx, blobs, key)
		rows = append(rows, []string{strings.TrimPrefix(key, prefix), strconv.Itoa(ledger.Count())})
	}
	return markdownTable([]string{"Session", "Items"}, rows), nil
}

func ledgerMarkdown(ctx context.Context, blobs repository.BlobStore, cat *catalog.Catalog, sessionID, search string) string {
	ledger := inventory.Load(ctx, blobs, inventory.StorageKey(sessionID))
	entries := ledger.Entries(cat, search)

	var b strings.Builder
	fmt.Fprintf(&b, "# Inventory %s\n\n", sessionID)
	if len(entries) == 0 {
		b.WriteString("No items.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Item.Name,
			e.Item.Rarity.Label(),
			strconv.Itoa(e.Quantity),
			valuation.FormatPrecise(e.Item.NumericValue() * int64(e.Quantity)),
		})
	}
	b.WriteString(markdownTable([]string{"Item", "Rarity", "Qty", "Value"}, rows))
	fmt.Fprintf(&b, "\n**Total: %s**\n", valuation.FormatPrecise(valuation.LedgerTotal(cat, ledger.Snapshot())))
	return b.String()
}
