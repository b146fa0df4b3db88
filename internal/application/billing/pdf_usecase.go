package billing

import (
	"context"
	"fmt"

	"github.com/billflow/billflow-api/internal/domain"
	"github.com/billflow/billflow-api/internal/domain/repository"
)

// PDFUseCase produces the downloadable PDF for an invoice in any status;
// unlike Send it never emails and never transitions.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	renderer    InvoicePDFRenderer
}

// NewPDFUseCase builds the usecase.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	renderer InvoicePDFRenderer,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, clientRepo: clientRepo, renderer: renderer}
}

// DownloadInvoicePDF renders the invoice and returns the bytes plus a
// suggested filename (<invoice number>.pdf).
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id int) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	// The client may have been deleted; the renderer treats a nil client as
	// an invoice without a bill-to block.
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("load client: %w", err)
	}
	pdf, err := uc.renderer.Render(ctx, inv, client)
	if err != nil {
		return nil, "", fmt.Errorf("%w: render pdf: %v", domain.ErrExternalService, err)
	}
	return pdf, inv.InvoiceNumber + ".pdf", nil
}
