package billing

import (
	"github.com/shopspring/decimal"

	"github.com/billflow/billflow-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals holds the derived money fields of an invoice.
type Totals struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
}

// ComputeTotals derives subtotal, tax, discount and grand total from the
// line items and tax/discount parameters.
//
// Each component is rounded to 2 decimal places (half away from zero)
// before it enters the next step; the final total is then rounded again.
// Rounding only once at the end produces different results for some inputs,
// so the per-step order must be preserved.
//
// ComputeTotals performs no validation: callers check for non-empty items
// and well-formed lines first. An empty item slice yields all-zero totals.
func ComputeTotals(items []entity.LineItem, taxRate, discountAmount decimal.Decimal, discountType string) Totals {
	var sum decimal.Decimal
	for _, item := range items {
		sum = sum.Add(item.Quantity.Mul(item.UnitPrice))
	}
	subtotal := sum.Round(2)

	taxAmount := subtotal.Mul(taxRate).Div(hundred).Round(2)

	var discount decimal.Decimal
	if discountType == entity.DiscountPercentage {
		discount = subtotal.Mul(discountAmount).Div(hundred).Round(2)
	} else {
		discount = discountAmount.Round(2)
	}

	// Negative totals are allowed: a fixed discount can exceed subtotal+tax.
	total := subtotal.Add(taxAmount).Sub(discount).Round(2)

	return Totals{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		DiscountAmount: discount,
		Total:          total,
	}
}
