package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billflow/billflow-api/internal/application/content"
)

// ContentHandler serves the marketing site's read-only content.
type ContentHandler struct {
	uc *content.UseCase
}

// NewContentHandler builds the handler.
func NewContentHandler(uc *content.UseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Testimonials GET /api/content/testimonials?featured=true
func (h *ContentHandler) Testimonials(c *fiber.Ctx) error {
	list, err := h.uc.Testimonials(c.Query("featured") == "true")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Testimonial GET /api/content/testimonials/:id
func (h *ContentHandler) Testimonial(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	t, err := h.uc.Testimonial(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(t)
}

// Plans GET /api/content/plans
func (h *ContentHandler) Plans(c *fiber.Ctx) error {
	list, err := h.uc.Plans()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Plan GET /api/content/plans/:id
func (h *ContentHandler) Plan(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badID(c)
	}
	p, err := h.uc.Plan(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// PlanComparison GET /api/content/plan-comparison
func (h *ContentHandler) PlanComparison(c *fiber.Ctx) error {
	table, err := h.uc.PlanComparison()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(table)
}
