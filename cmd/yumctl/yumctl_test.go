package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumbiru/yumvalues/internal/catalog"
	"github.com/yumbiru/yumvalues/internal/database/memory"
	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/inventory"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Item{
		{ID: "red-knife", Name: "Red Knife", Rarity: domain.RarityEpic, Type: domain.ItemTypeKnife, Value: domain.ParseItemValue("12,500")},
		{ID: "blue-pet", Name: "Blue Pet", Rarity: domain.RarityCollector, Type: domain.ItemTypePet, Value: domain.ParseItemValue("1,500")},
	})
}

func TestParseSelections(t *testing.T) {
	sels, err := parseSelections([]string{"red-knife=2", "blue-pet=1", "red-knife=1"})
	require.NoError(t, err)
	assert.Equal(t, []domain.QuantitySelection{
		{ItemID: "red-knife", Quantity: 3},
		{ItemID: "blue-pet", Quantity: 1},
	}, sels)

	for _, bad := range []string{"red-knife", "=2", "red-knife=0", "red-knife=x"} {
		_, err := parseSelections([]string{bad})
		assert.ErrorIs(t, err, errBadSelection, bad)
	}
}

func TestSelectionMarkdown(t *testing.T) {
	md := selectionMarkdown(testCatalog(), []domain.QuantitySelection{
		{ItemID: "blue-pet", Quantity: 1},
		{ItemID: "ghost", Quantity: 4},
	})

	assert.Contains(t, md, "| Blue Pet | 1 | 1.5k |")
	assert.Contains(t, md, "| ghost (unknown) | 4 | 0 |")
	assert.Contains(t, md, "**Total: 1.5k**")
}

func TestCatalogMarkdown(t *testing.T) {
	cat := testCatalog()

	md := catalogMarkdown(cat, domain.FilterKnives, "")
	assert.Contains(t, md, "| Red Knife | Epic | Knife | 12.5k |")
	assert.NotContains(t, md, "Blue Pet")

	md = catalogMarkdown(cat, domain.FilterAll, "zzz")
	assert.Contains(t, md, "No items match.")
}

func TestMarkdownTable_EscapesPipes(t *testing.T) {
	md := markdownTable([]string{"A"}, [][]string{{"x|y"}})
	assert.Equal(t, "| A |\n| --- |\n| x\\|y |\n", md)
}

func TestInventoryMarkdown(t *testing.T) {
	ctx := context.Background()
	blobs := memory.NewBlobStore()
	cat := testCatalog()

	md, err := sessionsMarkdown(ctx, blobs)
	require.NoError(t, err)
	assert.Equal(t, "No stored inventories.\n", md)

	ledger := inventory.Load(ctx, blobs, inventory.StorageKey("s1"))
	ledger.SetQuantity(ctx, "red-knife", 2)
	ledger.SetQuantity(ctx, "blue-pet", 1)

	md, err = sessionsMarkdown(ctx, blobs)
	require.NoError(t, err)
	assert.Contains(t, md, "| s1 | 2 |")

	md = ledgerMarkdown(ctx, blobs, cat, "s1", "")
	assert.Contains(t, md, "| Red Knife | Epic | 2 | 25.0k |")
	assert.Contains(t, md, "**Total: 26.5k**")

	md = ledgerMarkdown(ctx, blobs, cat, "nobody", "")
	assert.Contains(t, md, "No items.")
}
