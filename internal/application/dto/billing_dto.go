package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest is one line of an invoice in a create/update body.
type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest is the body for POST /api/invoices. Dates use the
// 2006-01-02 format.
type CreateInvoiceRequest struct {
	ClientID       int                  `json:"client_id"`
	IssueDate      string               `json:"issue_date"`
	DueDate        string               `json:"due_date"`
	Items          []InvoiceItemRequest `json:"items"`
	TaxRate        decimal.Decimal      `json:"tax_rate"`
	DiscountAmount decimal.Decimal      `json:"discount_amount"`
	DiscountType   string               `json:"discount_type"`
	Notes          string               `json:"notes,omitempty"`
}

// UpdateInvoiceRequest is the body for PUT /api/invoices/:id. Same shape as
// create minus the client reference, which is immutable.
type UpdateInvoiceRequest struct {
	IssueDate      string               `json:"issue_date"`
	DueDate        string               `json:"due_date"`
	Items          []InvoiceItemRequest `json:"items"`
	TaxRate        decimal.Decimal      `json:"tax_rate"`
	DiscountAmount decimal.Decimal      `json:"discount_amount"`
	DiscountType   string               `json:"discount_type"`
	Notes          string               `json:"notes,omitempty"`
}

// SetStatusRequest is the body for PATCH /api/invoices/:id/status.
type SetStatusRequest struct {
	Status string `json:"status"`
}

// InvoiceItemResponse is one line item in responses.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse is a full invoice, with the client's display name joined
// on when available.
type InvoiceResponse struct {
	ID             int                   `json:"id"`
	InvoiceNumber  string                `json:"invoice_number"`
	ClientID       int                   `json:"client_id"`
	ClientName     string                `json:"client_name,omitempty"`
	IssueDate      string                `json:"issue_date"`
	DueDate        string                `json:"due_date"`
	Items          []InvoiceItemResponse `json:"items"`
	TaxRate        decimal.Decimal       `json:"tax_rate"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	DiscountType   string                `json:"discount_type"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	TaxAmount      decimal.Decimal       `json:"tax_amount"`
	DiscountTotal  decimal.Decimal       `json:"discount_total"`
	Total          decimal.Decimal       `json:"total"`
	Status         string                `json:"status"`
	Notes          string                `json:"notes,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}
