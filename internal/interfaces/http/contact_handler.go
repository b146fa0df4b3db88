package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billflow/billflow-api/internal/application/contact"
	"github.com/billflow/billflow-api/internal/application/dto"
)

// ContactHandler handles the marketing site's contact form.
type ContactHandler struct {
	uc *contact.UseCase
}

// NewContactHandler builds the handler.
func NewContactHandler(uc *contact.UseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit POST /api/contact
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
