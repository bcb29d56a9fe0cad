package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yumbiru/yumvalues/internal/domain"
)

func TestList_Toggle(t *testing.T) {
	var l List

	assert.True(t, l.Toggle("a"))
	assert.Equal(t, 1, l.Quantity("a"))

	assert.False(t, l.Toggle("a"))
	assert.False(t, l.Contains("a"))
	assert.Equal(t, 0, l.Len())
}

func TestList_Add(t *testing.T) {
	var l List
	l.Add("a")
	l.Add("b")
	l.Add("a")

	assert.Equal(t, []domain.QuantitySelection{
		{ItemID: "a", Quantity: 2},
		{ItemID: "b", Quantity: 1},
	}, l.Items())
}

func TestList_AdjustFloorsAtOne(t *testing.T) {
	var l List
	l.Add("a")

	assert.True(t, l.Adjust("a", 4))
	assert.Equal(t, 5, l.Quantity("a"))

	assert.True(t, l.Adjust("a", -10))
	assert.Equal(t, 1, l.Quantity("a"))
	assert.True(t, l.Contains("a"))

	assert.False(t, l.Adjust("missing", 1))
}

func TestList_Set(t *testing.T) {
	var l List
	l.Add("a")

	assert.True(t, l.Set("a", 7))
	assert.Equal(t, 7, l.Quantity("a"))

	assert.True(t, l.Set("a", 0))
	assert.Equal(t, 1, l.Quantity("a"))

	assert.False(t, l.Set("missing", 3))
	assert.False(t, l.Contains("missing"))
}

func TestList_RemoveAndClear(t *testing.T) {
	var l List
	l.Add("a")
	l.Add("b")
	l.Add("c")

	assert.True(t, l.Remove("b"))
	assert.False(t, l.Remove("b"))
	assert.Equal(t, []domain.QuantitySelection{
		{ItemID: "a", Quantity: 1},
		{ItemID: "c", Quantity: 1},
	}, l.Items())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Items())
}

func TestList_ItemsIsACopy(t *testing.T) {
	var l List
	l.Add("a")

	items := l.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, l.Quantity("a"))
}

func TestFromItems(t *testing.T) {
	l := FromItems([]domain.QuantitySelection{
		{ItemID: "a", Quantity: 2},
		{ItemID: "b", Quantity: 0},
		{ItemID: "a", Quantity: 1},
	})

	assert.Equal(t, []domain.QuantitySelection{{ItemID: "a", Quantity: 3}}, l.Items())
}
