package billing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/billflow/billflow-api/internal/application/billing"
	"github.com/billflow/billflow-api/internal/application/dto"
	"github.com/billflow/billflow-api/internal/domain"
	domainbilling "github.com/billflow/billflow-api/internal/domain/billing"
	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test doubles for the delivery ports
// ──────────────────────────────────────────────────────────────────────────────

type stubRenderer struct {
	calls int
	fail  bool
}

func (r *stubRenderer) Render(_ context.Context, _ *entity.Invoice, _ *entity.Client) ([]byte, error) {
	r.calls++
	if r.fail {
		return nil, errors.New("render failed")
	}
	return []byte("%PDF-stub"), nil
}

type stubMailer struct {
	calls   int
	fail    bool
	lastTo  string
	lastPDF []byte
}

func (m *stubMailer) SendInvoice(_ context.Context, to string, _ *entity.Invoice, _ *entity.Client, pdf []byte) error {
	m.calls++
	m.lastTo = to
	m.lastPDF = pdf
	if m.fail {
		return errors.New("smtp is down")
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store    *memory.Store
	renderer *stubRenderer
	mailer   *stubMailer
	uc       *appbilling.InvoiceUseCase
}

// newFixture builds an empty store with one client (id 1) and the usecase
// wired to stub delivery ports.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewEmptyStore()
	require.NoError(t, store.Clients().Insert(&entity.Client{
		ID:          1,
		CompanyName: "Acme Design Studio",
		Email:       "billing@acme.example",
	}))
	renderer := &stubRenderer{}
	mailer := &stubMailer{}
	uc := appbilling.NewInvoiceUseCase(store.Invoices(), store.Clients(), renderer, mailer)
	return &fixture{store: store, renderer: renderer, mailer: mailer, uc: uc}
}

func validCreateRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:  1,
		IssueDate: "2025-01-15",
		DueDate:   "2025-02-14",
		Items: []dto.InvoiceItemRequest{
			{Description: "Design work", Quantity: dec("10"), UnitPrice: dec("95.00")},
		},
		TaxRate:        dec("10"),
		DiscountAmount: dec("0"),
		DiscountType:   entity.DiscountFixed,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createDraft(t *testing.T, f *fixture) *dto.InvoiceResponse {
	t.Helper()
	inv, err := f.uc.Create(validCreateRequest())
	require.NoError(t, err)
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_AssignsIDAndNumber(t *testing.T) {
	f := newFixture(t)

	inv, err := f.uc.Create(validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, inv.ID)
	assert.Equal(t, fmt.Sprintf("INV-%d-0001", time.Now().Year()), inv.InvoiceNumber)
	assert.Equal(t, entity.StatusDraft, inv.Status)
	assert.Equal(t, "Acme Design Studio", inv.ClientName)

	second, err := f.uc.Create(validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID, "ids must be max+1")
}

func TestInvoiceCreate_TotalsMatchCalculator(t *testing.T) {
	f := newFixture(t)
	in := validCreateRequest()
	in.Items = []dto.InvoiceItemRequest{
		{Description: "Consulting", Quantity: dec("2.5"), UnitPrice: dec("80")},
		{Description: "Travel", Quantity: dec("1"), UnitPrice: dec("120.50")},
	}
	in.TaxRate = dec("19")
	in.DiscountAmount = dec("10")
	in.DiscountType = entity.DiscountPercentage

	inv, err := f.uc.Create(in)
	require.NoError(t, err)

	want := domainbilling.ComputeTotals(
		[]entity.LineItem{
			{Description: "Consulting", Quantity: dec("2.5"), UnitPrice: dec("80")},
			{Description: "Travel", Quantity: dec("1"), UnitPrice: dec("120.50")},
		},
		in.TaxRate, in.DiscountAmount, in.DiscountType,
	)
	assert.True(t, inv.Subtotal.Equal(want.Subtotal), "subtotal %s", inv.Subtotal)
	assert.True(t, inv.TaxAmount.Equal(want.TaxAmount), "tax %s", inv.TaxAmount)
	assert.True(t, inv.DiscountTotal.Equal(want.DiscountAmount), "discount %s", inv.DiscountTotal)
	assert.True(t, inv.Total.Equal(want.Total), "total %s", inv.Total)
}

func TestInvoiceCreate_UnknownClient(t *testing.T) {
	f := newFixture(t)
	in := validCreateRequest()
	in.ClientID = 99

	_, err := f.uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceCreate_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateInvoiceRequest)
	}{
		{"bad issue date", func(in *dto.CreateInvoiceRequest) { in.IssueDate = "15/01/2025" }},
		{"bad due date", func(in *dto.CreateInvoiceRequest) { in.DueDate = "soon" }},
		{"due before issue", func(in *dto.CreateInvoiceRequest) { in.DueDate = "2025-01-01" }},
		{"no items", func(in *dto.CreateInvoiceRequest) { in.Items = nil }},
		{"blank description", func(in *dto.CreateInvoiceRequest) { in.Items[0].Description = "  " }},
		{"zero quantity", func(in *dto.CreateInvoiceRequest) { in.Items[0].Quantity = dec("0") }},
		{"negative price", func(in *dto.CreateInvoiceRequest) { in.Items[0].UnitPrice = dec("-1") }},
		{"tax over 100", func(in *dto.CreateInvoiceRequest) { in.TaxRate = dec("101") }},
		{"negative discount", func(in *dto.CreateInvoiceRequest) { in.DiscountAmount = dec("-5") }},
		{"bad discount type", func(in *dto.CreateInvoiceRequest) { in.DiscountType = "coupon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			in := validCreateRequest()
			tc.mutate(&in)
			_, err := f.uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_RecomputesTotals(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)

	updated, err := f.uc.Update(created.ID, dto.UpdateInvoiceRequest{
		IssueDate: "2025-01-20",
		DueDate:   "2025-02-19",
		Items: []dto.InvoiceItemRequest{
			{Description: "Revised scope", Quantity: dec("1"), UnitPrice: dec("9.995")},
		},
		TaxRate:        dec("10"),
		DiscountAmount: dec("0"),
		DiscountType:   entity.DiscountFixed,
	})
	require.NoError(t, err)

	// Each step rounds: 10.00 subtotal, 1.00 tax, 11.00 total.
	assert.True(t, updated.Subtotal.Equal(dec("10.00")), "subtotal %s", updated.Subtotal)
	assert.True(t, updated.TaxAmount.Equal(dec("1.00")), "tax %s", updated.TaxAmount)
	assert.True(t, updated.Total.Equal(dec("11.00")), "total %s", updated.Total)
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber, "invoice number is immutable")
	assert.Equal(t, created.ClientID, updated.ClientID, "client reference is immutable")
}

func TestInvoiceUpdate_NonDraftRejected(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)
	_, err := f.uc.Send(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = f.uc.Update(created.ID, dto.UpdateInvoiceRequest{
		IssueDate:    "2025-01-20",
		DueDate:      "2025-02-19",
		Items:        validCreateRequest().Items,
		DiscountType: entity.DiscountFixed,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestInvoiceUpdate_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Update(42, dto.UpdateInvoiceRequest{
		IssueDate:    "2025-01-20",
		DueDate:      "2025-02-19",
		Items:        validCreateRequest().Items,
		DiscountType: entity.DiscountFixed,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceDelete_DraftOnly(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)

	require.NoError(t, f.uc.Delete(created.ID))

	_, err := f.uc.Get(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceDelete_SentRejected(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)
	_, err := f.uc.Send(context.Background(), created.ID)
	require.NoError(t, err)

	err = f.uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Status machine
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to string
		wantErr  error
	}{
		{entity.StatusDraft, entity.StatusSent, nil},
		{entity.StatusSent, entity.StatusPaid, nil},
		{entity.StatusSent, entity.StatusOverdue, nil},
		{entity.StatusOverdue, entity.StatusPaid, nil},
		{entity.StatusDraft, entity.StatusPaid, domain.ErrInvalidState},
		{entity.StatusDraft, entity.StatusOverdue, domain.ErrInvalidState},
		{entity.StatusSent, entity.StatusDraft, domain.ErrInvalidState},
		{entity.StatusPaid, entity.StatusSent, domain.ErrInvalidState},
		{entity.StatusPaid, entity.StatusOverdue, domain.ErrInvalidState},
		{entity.StatusOverdue, entity.StatusSent, domain.ErrInvalidState},
	}
	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			f := newFixture(t)
			created := createDraft(t, f)
			forceStatus(t, f, created.ID, tc.from)

			inv, err := f.uc.SetStatus(created.ID, tc.to)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, inv.Status)
		})
	}
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)

	_, err := f.uc.SetStatus(created.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarkPaidAndOverdue(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)
	forceStatus(t, f, created.ID, entity.StatusSent)

	inv, err := f.uc.MarkOverdue(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOverdue, inv.Status)

	inv, err = f.uc.MarkPaid(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, inv.Status)

	_, err = f.uc.MarkPaid(created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState, "paid is terminal")
}

// forceStatus puts an invoice into the given status through the repository,
// bypassing the machine, so each test starts from a known state.
func forceStatus(t *testing.T, f *fixture, id int, status string) {
	t.Helper()
	inv, err := f.store.Invoices().GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, inv)
	inv.Status = status
	require.NoError(t, f.store.Invoices().Replace(id, inv))
}

// ──────────────────────────────────────────────────────────────────────────────
// Send / Resend
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceSend_TransitionsToSent(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)

	sent, err := f.uc.Send(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusSent, sent.Status)
	assert.Equal(t, 1, f.renderer.calls)
	assert.Equal(t, 1, f.mailer.calls)
	assert.Equal(t, "billing@acme.example", f.mailer.lastTo)
	assert.NotEmpty(t, f.mailer.lastPDF)
	assert.True(t, sent.Total.Equal(created.Total), "totals are not recomputed on send")
}

func TestInvoiceSend_AlreadySent(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)
	_, err := f.uc.Send(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = f.uc.Send(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestInvoiceSend_MailerFailureLeavesDraft(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)
	f.mailer.fail = true

	_, err := f.uc.Send(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrExternalService)

	inv, err := f.uc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, inv.Status, "failed delivery must not transition")
}

func TestInvoiceSend_RendererFailureLeavesDraft(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)
	f.renderer.fail = true

	_, err := f.uc.Send(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Equal(t, 0, f.mailer.calls, "mailer must not run after a render failure")

	inv, err := f.uc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, inv.Status)
}

func TestInvoiceSend_ClientWithoutEmail(t *testing.T) {
	f := newFixture(t)
	client, err := f.store.Clients().GetByID(1)
	require.NoError(t, err)
	client.Email = ""
	require.NoError(t, f.store.Clients().Replace(1, client))
	created := createDraft(t, f)

	_, err = f.uc.Send(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, f.renderer.calls, "fail before touching the emitters")
	assert.Equal(t, 0, f.mailer.calls)
}

func TestInvoiceResend_NoStatusChange(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)
	_, err := f.uc.Send(context.Background(), created.ID)
	require.NoError(t, err)

	resent, err := f.uc.Resend(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSent, resent.Status)
	assert.Equal(t, 2, f.mailer.calls)
}

func TestInvoiceResend_DraftRejected(t *testing.T) {
	f := newFixture(t)
	created := createDraft(t, f)

	_, err := f.uc.Resend(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceList_FilterAndSearch(t *testing.T) {
	f := newFixture(t)
	first := createDraft(t, f)
	second := createDraft(t, f)
	forceStatus(t, f, second.ID, entity.StatusSent)

	all, err := f.uc.List("", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	drafts, err := f.uc.List(entity.StatusDraft, "")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, first.ID, drafts[0].ID)

	// "all" behaves like no filter.
	everything, err := f.uc.List("all", "")
	require.NoError(t, err)
	assert.Len(t, everything, 2)

	byNumber, err := f.uc.List("", first.InvoiceNumber)
	require.NoError(t, err)
	require.Len(t, byNumber, 1)
	assert.Equal(t, first.ID, byNumber[0].ID)

	byClient, err := f.uc.List("", "acme design")
	require.NoError(t, err)
	assert.Len(t, byClient, 2, "search matches the client name case-insensitively")

	none, err := f.uc.List("", "no-such-thing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInvoiceListByClient(t *testing.T) {
	f := newFixture(t)
	createDraft(t, f)
	createDraft(t, f)

	list, err := f.uc.ListByClient(1)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.uc.ListByClient(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
