package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billflow/billflow-api/internal/domain/billing"
	"github.com/billflow/billflow-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reference vectors for ComputeTotals. These pin the exact arithmetic,
// including the round-at-each-step order; if someone "simplifies" the
// rounding to a single pass at the end, these fail immediately.
// ──────────────────────────────────────────────────────────────────────────────

func items(pairs ...[2]string) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, entity.LineItem{
			Description: "line",
			Quantity:    decimal.RequireFromString(p[0]),
			UnitPrice:   decimal.RequireFromString(p[1]),
		})
	}
	return out
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeTotals_FixedDiscountVector(t *testing.T) {
	// 2*10 + 1*5 = 25.00, tax 10% = 2.50, no discount, total 27.50
	got := billing.ComputeTotals(
		items([2]string{"2", "10"}, [2]string{"1", "5"}),
		dec("10"), dec("0"), entity.DiscountFixed,
	)

	assert.True(t, got.Subtotal.Equal(dec("25.00")), "subtotal: %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(dec("2.50")), "tax: %s", got.TaxAmount)
	assert.True(t, got.DiscountAmount.Equal(dec("0.00")), "discount: %s", got.DiscountAmount)
	assert.True(t, got.Total.Equal(dec("27.50")), "total: %s", got.Total)
}

func TestComputeTotals_PercentageDiscountVector(t *testing.T) {
	// 25 subtotal, 0% tax, 10% discount = 2.50 off, total 22.50
	got := billing.ComputeTotals(
		items([2]string{"2", "10"}, [2]string{"1", "5"}),
		dec("0"), dec("10"), entity.DiscountPercentage,
	)

	assert.True(t, got.DiscountAmount.Equal(dec("2.50")), "discount: %s", got.DiscountAmount)
	assert.True(t, got.TaxAmount.Equal(dec("0.00")), "tax: %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(dec("22.50")), "total: %s", got.Total)
}

func TestComputeTotals_PercentageDiscountWithTax(t *testing.T) {
	// 25 subtotal, 10% tax = 2.50, 10% discount = 2.50: they cancel out.
	got := billing.ComputeTotals(
		items([2]string{"2", "10"}, [2]string{"1", "5"}),
		dec("10"), dec("10"), entity.DiscountPercentage,
	)
	assert.True(t, got.Total.Equal(dec("25.00")), "total: %s", got.Total)
}

// TestComputeTotals_RoundsEachStep uses inputs where per-step rounding and
// round-once-at-the-end disagree. 1 x 9.995 rounds to a 10.00 subtotal, so
// 10% tax is 1.00 and the total 11.00; rounding only the final sum
// (9.995 * 1.1 = 10.9945) would give 10.99 instead.
func TestComputeTotals_RoundsEachStep(t *testing.T) {
	got := billing.ComputeTotals(
		items([2]string{"1", "9.995"}),
		dec("10"), dec("0"), entity.DiscountFixed,
	)

	require.True(t, got.Subtotal.Equal(dec("10.00")), "subtotal: %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(dec("1.00")), "tax: %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(dec("11.00")), "total must come from the rounded components, got %s", got.Total)
}

func TestComputeTotals_HalfAwayFromZero(t *testing.T) {
	// 0.125 at two decimals rounds up to 0.13 under half-away-from-zero
	// (banker's rounding would give 0.12).
	got := billing.ComputeTotals(
		items([2]string{"1", "0.125"}),
		dec("0"), dec("0"), entity.DiscountFixed,
	)
	assert.True(t, got.Subtotal.Equal(dec("0.13")), "subtotal: %s", got.Subtotal)
}

func TestComputeTotals_FixedDiscountLargerThanTotal_GoesNegative(t *testing.T) {
	// Negative totals are not clamped.
	got := billing.ComputeTotals(
		items([2]string{"1", "10"}),
		dec("0"), dec("15"), entity.DiscountFixed,
	)
	assert.True(t, got.Total.Equal(dec("-5.00")), "total: %s", got.Total)
}

func TestComputeTotals_EmptyItems_ZeroTotals(t *testing.T) {
	got := billing.ComputeTotals(nil, dec("19"), dec("5"), entity.DiscountPercentage)

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.Total.IsZero())
}

func TestComputeTotals_FractionalQuantities(t *testing.T) {
	// 2.5h * 80.00 = 200.00, tax 19% = 38.00, total 238.00
	got := billing.ComputeTotals(
		items([2]string{"2.5", "80"}),
		dec("19"), dec("0"), entity.DiscountFixed,
	)
	assert.True(t, got.Subtotal.Equal(dec("200.00")))
	assert.True(t, got.TaxAmount.Equal(dec("38.00")))
	assert.True(t, got.Total.Equal(dec("238.00")))
}

// TestComputeTotals_Deterministic verifies the calculator is a pure
// function: the same input always produces the same output.
func TestComputeTotals_Deterministic(t *testing.T) {
	in := items([2]string{"3", "33.33"}, [2]string{"0.5", "99.99"})

	a := billing.ComputeTotals(in, dec("8.25"), dec("12.5"), entity.DiscountPercentage)
	b := billing.ComputeTotals(in, dec("8.25"), dec("12.5"), entity.DiscountPercentage)

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
	assert.True(t, a.DiscountAmount.Equal(b.DiscountAmount))
	assert.True(t, a.Total.Equal(b.Total))
}

// The invariant total = subtotal + tax - discount holds after rounding for
// a spread of inputs.
func TestComputeTotals_TotalInvariant(t *testing.T) {
	cases := []struct {
		name         string
		items        []entity.LineItem
		taxRate      string
		discount     string
		discountType string
	}{
		{"no tax no discount", items([2]string{"4", "7.77"}), "0", "0", entity.DiscountFixed},
		{"tax and fixed discount", items([2]string{"2", "49.99"}), "21", "10", entity.DiscountFixed},
		{"tax and pct discount", items([2]string{"10", "3.33"}), "7.5", "33", entity.DiscountPercentage},
		{"tiny amounts", items([2]string{"1", "0.01"}, [2]string{"1", "0.02"}), "50", "1", entity.DiscountPercentage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.ComputeTotals(tc.items, dec(tc.taxRate), dec(tc.discount), tc.discountType)
			want := got.Subtotal.Add(got.TaxAmount).Sub(got.DiscountAmount).Round(2)
			assert.True(t, got.Total.Equal(want),
				"total %s != subtotal %s + tax %s - discount %s",
				got.Total, got.Subtotal, got.TaxAmount, got.DiscountAmount)
		})
	}
}
