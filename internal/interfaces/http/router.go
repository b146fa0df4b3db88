package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billflow/billflow-api/internal/application/billing"
	"github.com/billflow/billflow-api/internal/application/contact"
	"github.com/billflow/billflow-api/internal/application/content"
)

// RouterDeps holds the usecases the router wires handlers to.
type RouterDeps struct {
	ClientUC  *billing.ClientUseCase
	InvoiceUC *billing.InvoiceUseCase
	PDFUC     *billing.PDFUseCase
	ContactUC *contact.UseCase
	ContentUC *content.UseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.InvoiceUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/invoices", clientHandler.Invoices)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Patch("/:id/status", invoiceHandler.SetStatus)
	invoices.Post("/:id/mark-paid", invoiceHandler.MarkPaid)
	invoices.Post("/:id/mark-overdue", invoiceHandler.MarkOverdue)
	invoices.Post("/:id/send", invoiceHandler.Send)
	invoices.Post("/:id/resend", invoiceHandler.Resend)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact", contactHandler.Submit)

	contentGroup := api.Group("/content")
	contentHandler := NewContentHandler(deps.ContentUC)
	contentGroup.Get("/testimonials", contentHandler.Testimonials)
	contentGroup.Get("/testimonials/:id", contentHandler.Testimonial)
	contentGroup.Get("/plans", contentHandler.Plans)
	contentGroup.Get("/plans/:id", contentHandler.Plan)
	contentGroup.Get("/plan-comparison", contentHandler.PlanComparison)
}
