package billing

import (
	"context"

	"github.com/billflow/billflow-api/internal/domain/entity"
)

// InvoicePDFRenderer renders the printable document for an invoice.
type InvoicePDFRenderer interface {
	Render(ctx context.Context, invoice *entity.Invoice, client *entity.Client) ([]byte, error)
}

// InvoiceMailer delivers an invoice PDF to the client's email address.
// Implementations must not mutate the invoice; the usecase owns the status
// transition and only performs it after a successful send.
type InvoiceMailer interface {
	SendInvoice(ctx context.Context, to string, invoice *entity.Invoice, client *entity.Client, pdf []byte) error
}
