package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billflow/billflow-api/internal/application/billing"
	"github.com/billflow/billflow-api/internal/application/dto"
)

// ClientHandler handles client HTTP requests.
type ClientHandler struct {
	uc        *billing.ClientUseCase
	invoiceUC *billing.InvoiceUseCase
}

// NewClientHandler builds the handler.
func NewClientHandler(uc *billing.ClientUseCase, invoiceUC *billing.InvoiceUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, invoiceUC: invoiceUC}
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	client, err := h.uc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	client, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(client)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Invoices GET /api/clients/:id/invoices
func (h *ClientHandler) Invoices(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	list, err := h.invoiceUC.ListByClient(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
