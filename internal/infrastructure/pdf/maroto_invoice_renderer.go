// Package pdf renders the printable invoice document.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  INVOICE + number            │  issue/due dates + status    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: company / contact / email / phone / address       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Description | Qty | Unit price | Amount             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Tax / Discount / TOTAL                  │
//	│  NOTES                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/billflow/billflow-api/internal/domain/entity"
)

// ── palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 99, Green: 102, Blue: 241}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// statusColors matches the badge colors used across the product.
var statusColors = map[string]*props.Color{
	entity.StatusDraft:   {Red: 156, Green: 163, Blue: 175},
	entity.StatusSent:    {Red: 59, Green: 130, Blue: 246},
	entity.StatusPaid:    {Red: 34, Green: 197, Blue: 94},
	entity.StatusOverdue: {Red: 239, Green: 68, Blue: 68},
}

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// MarotoInvoiceRenderer implements billing.InvoicePDFRenderer using Maroto v2.
type MarotoInvoiceRenderer struct{}

// NewMarotoInvoiceRenderer builds the renderer.
func NewMarotoInvoiceRenderer() *MarotoInvoiceRenderer { return &MarotoInvoiceRenderer{} }

// Render generates the PDF and returns its bytes. A nil client produces a
// document without the bill-to block (the client may have been deleted
// after the invoice was issued).
func (g *MarotoInvoiceRenderer) Render(_ context.Context, invoice *entity.Invoice, client *entity.Client) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor("BillFlow", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if client != nil {
		m.AddRows(billToRow(client))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	if invoice.Notes != "" {
		m.AddRows(notesRows(invoice.Notes)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── sections ──────────────────────────────────────────────────────────────────

// headerRow: INVOICE + number (left), dates + status badge (right).
func headerRow(invoice *entity.Invoice) core.Row {
	statusColor, ok := statusColors[invoice.Status]
	if !ok {
		statusColor = statusColors[entity.StatusDraft]
	}
	return row.New(22).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Size: 10, Top: 12, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Issue date: "+invoice.IssueDate.Format("Jan 2, 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Due date: "+invoice.DueDate.Format("Jan 2, 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New(strings.ToUpper(invoice.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 13,
				Color: statusColor,
			}),
		),
	)
}

// billToRow: client company, contact and address.
func billToRow(client *entity.Client) core.Row {
	contact := make([]string, 0, 3)
	if client.ContactPerson != "" {
		contact = append(contact, client.ContactPerson)
	}
	if client.Email != "" {
		contact = append(contact, client.Email)
	}
	if client.Phone != "" {
		contact = append(contact, client.Phone)
	}
	address := strings.TrimSpace(fmt.Sprintf("%s  %s %s %s",
		client.Billing.Street, client.Billing.City, client.Billing.State, client.Billing.Zip))

	return row.New(20).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New(strings.Join(contact, "   |   "), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
			text.New(address, props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 2, align.Center),
		h("Unit price", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		amount := item.Quantity.Mul(item.UnitPrice).Round(2)
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				item.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				item.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatMoney(amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned block; tax and discount rows appear only when
// they apply, matching the on-screen invoice summary.
func totalsRow(invoice *entity.Invoice) core.Row {
	labels := []core.Component{}
	values := []core.Component{}
	top := 1.0
	add := func(label, value string, bold bool) {
		style := fontstyle.Normal
		size := 9.0
		color := (*props.Color)(nil)
		if bold {
			style = fontstyle.Bold
			size = 11
			color = colorPrimary
		}
		labels = append(labels, text.New(label, props.Text{
			Style: style, Size: size, Align: align.Right, Right: 2, Top: top, Color: color,
		}))
		values = append(values, text.New(value, props.Text{
			Style: style, Size: size, Align: align.Right, Right: 1, Top: top, Color: color,
		}))
		top += 6
	}

	add("Subtotal:", formatMoney(invoice.Subtotal), false)
	if invoice.TaxRate.GreaterThan(decimal.Zero) {
		add(fmt.Sprintf("Tax (%s%%):", invoice.TaxRate.String()), formatMoney(invoice.TaxAmount), false)
	}
	if invoice.DiscountTotal.GreaterThan(decimal.Zero) {
		add("Discount:", "-"+formatMoney(invoice.DiscountTotal), false)
	}
	add("TOTAL:", formatMoney(invoice.Total), true)

	return row.New(30).Add(
		col.New(6),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
	)
}

func notesRows(notes string) []core.Row {
	return []core.Row{
		row.New(4),
		row.New(6).Add(col.New(12).Add(
			text.New("Notes", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(12).Add(col.New(12).Add(
			text.New(notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney renders a decimal as "$1,234.56"; the locale printer supplies
// the thousands separators.
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("$%.2f", f)
}
