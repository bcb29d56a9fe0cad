package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/yumbiru/yumvalues/internal/catalog"
	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/selection"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

var errBadSelection = errors.New("selection must be <item-id>=<quantity>")

// valueCmd prices a selection the way the calculator does.
type valueCmd struct {
	path   string
	schema string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "price a selection of items" }
func (*valueCmd) Usage() string {
	return `yumctl value [-path <file>] <item-id>=<quantity>...

  Prints each line and the total value. Unknown ids contribute nothing.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "catalog file (defaults to CATALOG_PATH)")
	f.StringVar(&c.schema, "schema", "", "catalog JSON schema (defaults to CATALOG_SCHEMA_PATH)")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fail("%s", c.Usage())
		return subcommands.ExitUsageError
	}
	sels, err := parseSelections(f.Args())
	if err != nil {
		fail("%v", err)
		return subcommands.ExitUsageError
	}

	cat, err := loadCatalog(c.path, c.schema)
	if err != nil {
		fail("Error loading catalog: %v", err)
		return subcommands.ExitFailure
	}

	printMarkdown(selectionMarkdown(cat, sels))
	return subcommands.ExitSuccess
}

// parseSelections reads id=qty pairs. Repeated ids add up; a quantity
// below one is rejected.
func parseSelections(args []string) ([]domain.QuantitySelection, error) {
	parsed := make([]domain.QuantitySelection, 0, len(args))
	for _, arg := range args {
		id, qty, ok := strings.Cut(arg, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("%w: %q", errBadSelection, arg)
		}
		n, err := strconv.Atoi(qty)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q", errBadSelection, arg)
		}
		parsed = append(parsed, domain.QuantitySelection{ItemID: id, Quantity: n})
	}
	return selection.FromItems(parsed).Items(), nil
}

func selectionMarkdown(cat *catalog.Catalog, sels []domain.QuantitySelection) string {
	rows := make([][]string, 0, len(sels))
	for _, s := range sels {
		item, ok := cat.Lookup(s.ItemID)
		if !ok {
			rows = append(rows, []string{s.ItemID + " (unknown)", strconv.Itoa(s.Quantity), "0"})
			continue
		}
		line := item.NumericValue() * int64(s.Quantity)
		rows = append(rows, []string{item.Name, strconv.Itoa(s.Quantity), valuation.FormatPrecise(line)})
	}

	var b strings.Builder
	b.WriteString(markdownTable([]string{"Item", "Qty", "Value"}, rows))
	fmt.Fprintf(&b, "\n**Total: %s**\n", valuation.FormatPrecise(valuation.Total(cat, sels)))
	return b.String()
}
