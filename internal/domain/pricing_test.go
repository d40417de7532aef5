package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLinePrice_MultipliesUnitPriceByQuantity(t *testing.T) {
	tests := []struct {
		name string
		line OrderLine
		want uint64
	}{
		{"single cheese burger", OrderLine{Item: CheeseBurger, Quantity: 1}, 12},
		{"two cheese burgers", OrderLine{Item: CheeseBurger, Quantity: 2}, 24},
		{"three chicken burgers", OrderLine{Item: ChickenBurger, Quantity: 3}, 45},
		{"ten vegi burgers", OrderLine{Item: VegiBurger, Quantity: 10}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LinePrice(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderTotal_SumsLinePrices(t *testing.T) {
	lines := []OrderLine{
		{Item: CheeseBurger, Quantity: 2},
		{Item: VegiBurger, Quantity: 1},
	}

	total, err := OrderTotal(lines)
	require.NoError(t, err)
	assert.Equal(t, uint64(34), total)
}

func TestOrderTotal_EmptyLinesIsZero(t *testing.T) {
	total, err := OrderTotal(nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

// Any auditor must be able to reproduce the total from the line items alone.
func TestOrderTotal_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(rt, "lines")
		lines := make([]OrderLine, n)
		var want uint64
		for i := range lines {
			item := rapid.SampledFrom([]MenuItem{CheeseBurger, ChickenBurger, VegiBurger}).Draw(rt, "item")
			qty := rapid.Uint32Range(1, 100_000).Draw(rt, "qty")
			lines[i] = OrderLine{Item: item, Quantity: qty}
			want += item.UnitPrice() * uint64(qty)
		}

		first, err := OrderTotal(lines)
		require.NoError(rt, err)
		assert.Equal(rt, want, first)

		// Recomputing never diverges.
		second, err := OrderTotal(lines)
		require.NoError(rt, err)
		assert.Equal(rt, first, second)
	})
}

func TestNativeValue_AppliesScaleFactor(t *testing.T) {
	v, err := NativeValue(34)
	require.NoError(t, err)
	assert.Equal(t, uint64(34_000_000_000_000), v)
}

func TestNativeValue_Overflow(t *testing.T) {
	// Anything above ^uint64(0)/ScaleFactor price units cannot be scaled.
	_, err := NativeValue(^uint64(0)/ScaleFactor + 1)
	assert.ErrorIs(t, err, ErrPriceOverflow)
}
