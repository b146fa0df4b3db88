package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billflow/billflow-api/internal/application/billing"
	"github.com/billflow/billflow-api/internal/application/dto"
)

// InvoiceHandler handles invoice HTTP requests: CRUD, the status machine
// and PDF/email delivery.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// List GET /api/invoices?status=sent&search=acme
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	inv, err := h.uc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStatus PATCH /api/invoices/:id/status
func (h *InvoiceHandler) SetStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	inv, err := h.uc.SetStatus(id, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// MarkPaid POST /api/invoices/:id/mark-paid
func (h *InvoiceHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	inv, err := h.uc.MarkPaid(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// MarkOverdue POST /api/invoices/:id/mark-overdue
func (h *InvoiceHandler) MarkOverdue(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	inv, err := h.uc.MarkOverdue(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Send POST /api/invoices/:id/send
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	inv, err := h.uc.Send(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Resend POST /api/invoices/:id/resend
func (h *InvoiceHandler) Resend(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	inv, err := h.uc.Resend(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	pdf, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
