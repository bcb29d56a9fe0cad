package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumbiru/yumvalues/internal/domain"
)

func TestParseSide(t *testing.T) {
	for _, in := range []string{"left", "right", ""} {
		side, err := ParseSide(in)
		require.NoError(t, err)
		assert.Equal(t, domain.TradeSide(in), side)
	}

	_, err := ParseSide("middle")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDesk_AddToActive(t *testing.T) {
	var d Desk

	assert.False(t, d.AddToActive("a"), "no side selected")

	require.NoError(t, d.SelectSide(domain.TradeSideLeft))
	assert.True(t, d.AddToActive("a"))
	assert.True(t, d.AddToActive("a"))
	assert.True(t, d.ActiveContains("a"))

	require.NoError(t, d.SelectSide(domain.TradeSideRight))
	assert.True(t, d.AddToActive("b"))
	assert.False(t, d.ActiveContains("a"))

	assert.Equal(t, []domain.QuantitySelection{{ItemID: "a", Quantity: 2}}, d.Left())
	assert.Equal(t, []domain.QuantitySelection{{ItemID: "b", Quantity: 1}}, d.Right())

	assert.ErrorIs(t, d.SelectSide("up"), domain.ErrValidation)
	assert.Equal(t, domain.TradeSideRight, d.ActiveSide())
}

func TestDesk_EditSides(t *testing.T) {
	var d Desk
	require.NoError(t, d.SelectSide(domain.TradeSideLeft))
	d.AddToActive("a")
	d.AddToActive("b")

	require.NoError(t, d.Adjust(domain.TradeSideLeft, "a", 3))
	require.NoError(t, d.Adjust(domain.TradeSideLeft, "b", -3))
	assert.Equal(t, []domain.QuantitySelection{
		{ItemID: "a", Quantity: 4},
		{ItemID: "b", Quantity: 1},
	}, d.Left())

	require.NoError(t, d.Remove(domain.TradeSideLeft, "a"))
	assert.Equal(t, []domain.QuantitySelection{{ItemID: "b", Quantity: 1}}, d.Left())

	require.NoError(t, d.Clear(domain.TradeSideLeft))
	assert.Empty(t, d.Left())

	assert.ErrorIs(t, d.Adjust("", "a", 1), domain.ErrValidation)
}

func TestDesk_ProposalAndReset(t *testing.T) {
	var d Desk
	require.NoError(t, d.SelectSide(domain.TradeSideLeft))
	d.AddToActive("a")
	require.NoError(t, d.SelectSide(domain.TradeSideRight))
	d.AddToActive("b")
	d.SetTarget("bob")

	p := d.Proposal("alice")
	assert.Equal(t, "alice", p.CreatedBy)
	assert.Equal(t, "bob", p.TargetDisplayName)
	assert.Len(t, p.LeftItems, 1)
	assert.Len(t, p.RightItems, 1)

	d.Reset()
	assert.Empty(t, d.Left())
	assert.Empty(t, d.Right())
	assert.Equal(t, "", d.Target())
	assert.Equal(t, domain.TradeSideRight, d.ActiveSide())
}

func TestDesk_Totals(t *testing.T) {
	items := stubCatalog{
		"a": {ID: "a", Value: domain.NewItemValue(1500)},
		"b": {ID: "b", Value: domain.NewItemValue(400)},
	}
	var d Desk
	require.NoError(t, d.SelectSide(domain.TradeSideLeft))
	d.AddToActive("a")
	require.NoError(t, d.SelectSide(domain.TradeSideRight))
	d.AddToActive("b")
	d.AddToActive("b")
	d.AddToActive("ghost")

	left, right, diff := d.Totals(items)
	assert.Equal(t, int64(1500), left)
	assert.Equal(t, int64(800), right)
	assert.Equal(t, int64(700), diff)
}
