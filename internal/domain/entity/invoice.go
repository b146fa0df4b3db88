package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses. An invoice is created as a draft, becomes sent once it
// has been delivered to the client, and ends up paid or overdue. Paid has no
// outgoing transition.
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Discount types. A fixed discount is an absolute amount; a percentage
// discount is applied to the subtotal.
const (
	DiscountFixed      = "fixed"
	DiscountPercentage = "percentage"
)

// LineItem is one billable line of an invoice. Immutable once the invoice
// has been sent.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Invoice represents an invoice header plus its line items.
// Subtotal, TaxAmount, DiscountTotal and Total are derived: recomputed on
// every create/update, never hand-edited.
type Invoice struct {
	ID             int
	InvoiceNumber  string // INV-<year>-<id padded to 4 digits>, stable once assigned
	ClientID       int
	IssueDate      time.Time
	DueDate        time.Time // invariant: DueDate >= IssueDate
	Items          []LineItem
	TaxRate        decimal.Decimal // percentage, 0..100
	DiscountAmount decimal.Decimal // as entered; meaning depends on DiscountType
	DiscountType   string
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountTotal  decimal.Decimal // discount actually applied, in currency
	Total          decimal.Decimal
	Status         string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
