package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/billflow/billflow-api/internal/application/dto"
	"github.com/billflow/billflow-api/internal/domain"
	domainbilling "github.com/billflow/billflow-api/internal/domain/billing"
	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/domain/repository"
)

const dateFormat = "2006-01-02"

// InvoiceUseCase owns the invoice lifecycle: creation, draft edits, the
// status machine and delivery. Totals are always recomputed through the
// domain calculator; handlers never write derived fields.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	renderer    InvoicePDFRenderer
	mailer      InvoiceMailer
}

// NewInvoiceUseCase builds the usecase.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	renderer InvoicePDFRenderer,
	mailer InvoiceMailer,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		renderer:    renderer,
		mailer:      mailer,
	}
}

// Create validates the request, computes totals, assigns the next id and a
// derived invoice number, and stores the invoice as a draft.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	issueDate, dueDate, items, err := validateInvoiceInput(
		in.IssueDate, in.DueDate, in.Items, in.TaxRate, in.DiscountAmount, in.DiscountType,
	)
	if err != nil {
		return nil, err
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client %d", domain.ErrNotFound, in.ClientID)
	}

	id, err := uc.invoiceRepo.NextID()
	if err != nil {
		return nil, fmt.Errorf("next invoice id: %w", err)
	}

	totals := domainbilling.ComputeTotals(items, in.TaxRate, in.DiscountAmount, in.DiscountType)
	now := time.Now()
	inv := &entity.Invoice{
		ID:             id,
		InvoiceNumber:  fmt.Sprintf("INV-%d-%04d", now.Year(), id),
		ClientID:       in.ClientID,
		IssueDate:      issueDate,
		DueDate:        dueDate,
		Items:          items,
		TaxRate:        in.TaxRate,
		DiscountAmount: in.DiscountAmount,
		DiscountType:   in.DiscountType,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		DiscountTotal:  totals.DiscountAmount,
		Total:          totals.Total,
		Status:         entity.StatusDraft,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.invoiceRepo.Insert(inv); err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return toInvoiceResponse(inv, client.CompanyName), nil
}

// Update replaces the editable fields of a draft invoice and recomputes
// totals. Invoices that have left draft are immutable.
func (uc *InvoiceUseCase) Update(id int, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	if inv.Status != entity.StatusDraft {
		return nil, fmt.Errorf("%w: cannot edit a %s invoice", domain.ErrInvalidState, inv.Status)
	}

	issueDate, dueDate, items, err := validateInvoiceInput(
		in.IssueDate, in.DueDate, in.Items, in.TaxRate, in.DiscountAmount, in.DiscountType,
	)
	if err != nil {
		return nil, err
	}

	totals := domainbilling.ComputeTotals(items, in.TaxRate, in.DiscountAmount, in.DiscountType)
	inv.IssueDate = issueDate
	inv.DueDate = dueDate
	inv.Items = items
	inv.TaxRate = in.TaxRate
	inv.DiscountAmount = in.DiscountAmount
	inv.DiscountType = in.DiscountType
	inv.Subtotal = totals.Subtotal
	inv.TaxAmount = totals.TaxAmount
	inv.DiscountTotal = totals.DiscountAmount
	inv.Total = totals.Total
	inv.Notes = in.Notes
	inv.UpdatedAt = time.Now()

	if err := uc.invoiceRepo.Replace(id, inv); err != nil {
		return nil, fmt.Errorf("replace invoice: %w", err)
	}
	return toInvoiceResponse(inv, uc.clientName(inv.ClientID)), nil
}

// Delete removes a draft invoice. Non-drafts cannot be deleted.
func (uc *InvoiceUseCase) Delete(id int) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	if inv.Status != entity.StatusDraft {
		return fmt.Errorf("%w: cannot delete a %s invoice", domain.ErrInvalidState, inv.Status)
	}
	removed, err := uc.invoiceRepo.Remove(id)
	if err != nil {
		return fmt.Errorf("remove invoice: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	return nil
}

// SetStatus moves an invoice to newStatus. The status machine is enforced
// here, not just in the UI: unknown values are a validation error and
// disallowed edges (paid -> anything, sent -> draft, ...) an invalid-state
// error.
func (uc *InvoiceUseCase) SetStatus(id int, newStatus string) (*dto.InvoiceResponse, error) {
	if !domainbilling.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, newStatus)
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	if !domainbilling.CanTransition(inv.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidState, inv.Status, newStatus)
	}
	inv.Status = newStatus
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Replace(id, inv); err != nil {
		return nil, fmt.Errorf("replace invoice: %w", err)
	}
	return toInvoiceResponse(inv, uc.clientName(inv.ClientID)), nil
}

// MarkPaid moves a sent or overdue invoice to paid.
func (uc *InvoiceUseCase) MarkPaid(id int) (*dto.InvoiceResponse, error) {
	return uc.SetStatus(id, entity.StatusPaid)
}

// MarkOverdue moves a sent invoice to overdue.
func (uc *InvoiceUseCase) MarkOverdue(id int) (*dto.InvoiceResponse, error) {
	return uc.SetStatus(id, entity.StatusOverdue)
}

// Send renders the invoice PDF and emails it to the client, then moves the
// invoice from draft to sent. Totals are not recomputed. If the client has
// no email address the emitters are never invoked; if either emitter fails
// the invoice stays in draft and the failure is surfaced.
func (uc *InvoiceUseCase) Send(ctx context.Context, id int) (*dto.InvoiceResponse, error) {
	inv, client, err := uc.loadForDelivery(id)
	if err != nil {
		return nil, err
	}
	if inv.Status != entity.StatusDraft {
		return nil, fmt.Errorf("%w: invoice is already %s", domain.ErrInvalidState, inv.Status)
	}
	if err := uc.deliver(ctx, inv, client); err != nil {
		return nil, err
	}
	inv.Status = entity.StatusSent
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Replace(id, inv); err != nil {
		return nil, fmt.Errorf("replace invoice: %w", err)
	}
	return toInvoiceResponse(inv, client.CompanyName), nil
}

// Resend re-emails an already-sent (or overdue) invoice. No status change.
func (uc *InvoiceUseCase) Resend(ctx context.Context, id int) (*dto.InvoiceResponse, error) {
	inv, client, err := uc.loadForDelivery(id)
	if err != nil {
		return nil, err
	}
	if inv.Status != entity.StatusSent && inv.Status != entity.StatusOverdue {
		return nil, fmt.Errorf("%w: cannot resend a %s invoice", domain.ErrInvalidState, inv.Status)
	}
	if err := uc.deliver(ctx, inv, client); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, client.CompanyName), nil
}

func (uc *InvoiceUseCase) loadForDelivery(id int) (*entity.Invoice, *entity.Client, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return nil, nil, fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return nil, nil, fmt.Errorf("%w: client %d", domain.ErrNotFound, inv.ClientID)
	}
	if client.Email == "" {
		// Fail before touching the emitters.
		return nil, nil, fmt.Errorf("%w: client has no email address", domain.ErrInvalidInput)
	}
	return inv, client, nil
}

func (uc *InvoiceUseCase) deliver(ctx context.Context, inv *entity.Invoice, client *entity.Client) error {
	pdf, err := uc.renderer.Render(ctx, inv, client)
	if err != nil {
		return fmt.Errorf("%w: render pdf: %v", domain.ErrExternalService, err)
	}
	if err := uc.mailer.SendInvoice(ctx, client.Email, inv, client, pdf); err != nil {
		return fmt.Errorf("%w: send email: %v", domain.ErrExternalService, err)
	}
	return nil
}

// Get returns one invoice with the client name joined on.
func (uc *InvoiceUseCase) Get(id int) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice %d", domain.ErrNotFound, id)
	}
	return toInvoiceResponse(inv, uc.clientName(inv.ClientID)), nil
}

// List returns invoices, optionally filtered by status and by a free-text
// search over the invoice number and client name.
func (uc *InvoiceUseCase) List(status, search string) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	names := uc.clientNames()

	if status != "" && status != "all" {
		invoices = lo.Filter(invoices, func(inv *entity.Invoice, _ int) bool {
			return inv.Status == status
		})
	}
	if search != "" {
		needle := strings.ToLower(search)
		invoices = lo.Filter(invoices, func(inv *entity.Invoice, _ int) bool {
			return strings.Contains(strings.ToLower(inv.InvoiceNumber), needle) ||
				strings.Contains(strings.ToLower(names[inv.ClientID]), needle)
		})
	}

	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, names[inv.ClientID]))
	}
	return out, nil
}

// ListByClient returns the invoices referencing one client.
func (uc *InvoiceUseCase) ListByClient(clientID int) ([]*dto.InvoiceResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client %d", domain.ErrNotFound, clientID)
	}
	invoices, err := uc.invoiceRepo.ListByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, client.CompanyName))
	}
	return out, nil
}

// clientName resolves a client's display name; empty when the client is
// gone (invoices outlive their client).
func (uc *InvoiceUseCase) clientName(clientID int) string {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return ""
	}
	return client.CompanyName
}

func (uc *InvoiceUseCase) clientNames() map[int]string {
	names := make(map[int]string)
	clients, err := uc.clientRepo.List()
	if err != nil {
		return names
	}
	for _, c := range clients {
		names[c.ID] = c.CompanyName
	}
	return names
}

// validateInvoiceInput checks the shared create/update fields and parses the
// dates. All violations map to domain.ErrInvalidInput.
func validateInvoiceInput(
	issueDateStr, dueDateStr string,
	in []dto.InvoiceItemRequest,
	taxRate, discountAmount decimal.Decimal,
	discountType string,
) (issueDate, dueDate time.Time, items []entity.LineItem, err error) {
	issueDate, err = time.Parse(dateFormat, issueDateStr)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: issue_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	dueDate, err = time.Parse(dateFormat, dueDateStr)
	if err != nil {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: due_date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if dueDate.Before(issueDate) {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: due_date is before issue_date", domain.ErrInvalidInput)
	}
	if len(in) == 0 {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: at least one line item is required", domain.ErrInvalidInput)
	}
	items = make([]entity.LineItem, 0, len(in))
	for i, item := range in {
		if strings.TrimSpace(item.Description) == "" {
			return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: item %d has no description", domain.ErrInvalidInput, i+1)
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: item %d quantity must be positive", domain.ErrInvalidInput, i+1)
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: item %d unit price cannot be negative", domain.ErrInvalidInput, i+1)
		}
		items = append(items, entity.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	if taxRate.LessThan(decimal.Zero) || taxRate.GreaterThan(hundred) {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: tax_rate must be between 0 and 100", domain.ErrInvalidInput)
	}
	if discountAmount.LessThan(decimal.Zero) {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: discount_amount cannot be negative", domain.ErrInvalidInput)
	}
	if !domainbilling.ValidDiscountType(discountType) {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: discount_type must be fixed or percentage", domain.ErrInvalidInput)
	}
	return issueDate, dueDate, items, nil
}

var hundred = decimal.NewFromInt(100)

func toInvoiceResponse(inv *entity.Invoice, clientName string) *dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Quantity.Mul(item.UnitPrice).Round(2),
		})
	}
	return &dto.InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		ClientID:       inv.ClientID,
		ClientName:     clientName,
		IssueDate:      inv.IssueDate.Format(dateFormat),
		DueDate:        inv.DueDate.Format(dateFormat),
		Items:          items,
		TaxRate:        inv.TaxRate,
		DiscountAmount: inv.DiscountAmount,
		DiscountType:   inv.DiscountType,
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		DiscountTotal:  inv.DiscountTotal,
		Total:          inv.Total,
		Status:         inv.Status,
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      inv.UpdatedAt.Format(time.RFC3339),
	}
}
