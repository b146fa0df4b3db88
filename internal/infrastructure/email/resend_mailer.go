// Package email delivers transactional mail through Resend.
package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/billflow/billflow-api/internal/domain"
	"github.com/billflow/billflow-api/internal/domain/entity"
)

// Config holds the mailer configuration. An empty APIKey disables
// delivery; attempts then fail with a configuration error.
type Config struct {
	APIKey      string
	FromAddress string
	SupportTo   string
}

// ResendMailer sends invoice and contact emails via the Resend API.
type ResendMailer struct {
	client      *resend.Client
	enabled     bool
	fromAddress string
	supportTo   string
}

// NewResendMailer creates a mailer. Delivery is disabled when no API key
// is configured.
func NewResendMailer(cfg Config) *ResendMailer {
	m := &ResendMailer{
		fromAddress: cfg.FromAddress,
		supportTo:   cfg.SupportTo,
	}
	if cfg.APIKey == "" {
		return m
	}
	m.client = resend.NewClient(cfg.APIKey)
	m.enabled = true
	return m
}

// IsEnabled reports whether the mailer has an API key configured.
func (m *ResendMailer) IsEnabled() bool {
	return m.enabled
}

// SendInvoice emails the invoice to the client with the PDF attached.
func (m *ResendMailer) SendInvoice(ctx context.Context, to string, invoice *entity.Invoice, client *entity.Client, pdf []byte) error {
	if !m.enabled {
		return fmt.Errorf("%w: email delivery is not configured", domain.ErrExternalService)
	}

	recipient := ""
	if client != nil {
		recipient = client.ContactPerson
		if recipient == "" {
			recipient = client.CompanyName
		}
	}

	params := &resend.SendEmailRequest{
		From:    m.fromAddress,
		To:      []string{to},
		Subject: fmt.Sprintf("Invoice %s from BillFlow", invoice.InvoiceNumber),
		Html:    invoiceBody(invoice, recipient),
		Attachments: []*resend.Attachment{
			{
				Filename:    invoice.InvoiceNumber + ".pdf",
				Content:     pdf,
				ContentType: "application/pdf",
			},
		},
	}
	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send invoice email: %w", err)
	}
	return nil
}

// SendContact forwards a contact form submission to the support inbox
// and sends a confirmation back to the sender.
func (m *ResendMailer) SendContact(ctx context.Context, msg *entity.ContactMessage) error {
	if !m.enabled {
		return fmt.Errorf("%w: email delivery is not configured", domain.ErrExternalService)
	}

	support := &resend.SendEmailRequest{
		From:    m.fromAddress,
		To:      []string{m.supportTo},
		Subject: "Contact Form: " + msg.Subject,
		ReplyTo: msg.Email,
		Html:    contactSupportBody(msg),
	}
	if _, err := m.client.Emails.SendWithContext(ctx, support); err != nil {
		return fmt.Errorf("send support notification: %w", err)
	}

	confirmation := &resend.SendEmailRequest{
		From:    m.fromAddress,
		To:      []string{msg.Email},
		Subject: "We received your message - BillFlow Support",
		Html:    contactConfirmationBody(msg),
	}
	if _, err := m.client.Emails.SendWithContext(ctx, confirmation); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

// ── bodies ────────────────────────────────────────────────────────────────────

func invoiceBody(invoice *entity.Invoice, recipient string) string {
	greeting := "Hi,"
	if recipient != "" {
		greeting = "Hi " + html.EscapeString(recipient) + ","
	}
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #6366f1;">Invoice ` + html.EscapeString(invoice.InvoiceNumber) + `</h2>`)
	b.WriteString(`<p>` + greeting + `</p>`)
	b.WriteString(`<p>Please find your invoice attached to this email.</p>`)
	b.WriteString(`<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<p><strong>Amount due:</strong> $` + invoice.Total.StringFixed(2) + `</p>`)
	b.WriteString(`<p><strong>Due date:</strong> ` + invoice.DueDate.Format("January 2, 2006") + `</p>`)
	b.WriteString(`</div>`)
	if invoice.Notes != "" {
		b.WriteString(`<p style="white-space: pre-wrap;">` + html.EscapeString(invoice.Notes) + `</p>`)
	}
	b.WriteString(`<p style="margin-top: 30px;">Best regards,<br><strong>BillFlow</strong></p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func contactSupportBody(msg *entity.ContactMessage) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #6366f1;">New Contact Form Submission</h2>`)
	b.WriteString(`<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<p><strong>Name:</strong> ` + html.EscapeString(msg.Name) + `</p>`)
	b.WriteString(`<p><strong>Email:</strong> ` + html.EscapeString(msg.Email) + `</p>`)
	b.WriteString(`<p><strong>Subject:</strong> ` + html.EscapeString(msg.Subject) + `</p>`)
	b.WriteString(`<p><strong>Reference:</strong> ` + html.EscapeString(msg.Reference) + `</p>`)
	b.WriteString(`</div>`)
	b.WriteString(`<div style="margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #374151;">Message:</h3>`)
	b.WriteString(`<p style="white-space: pre-wrap;">` + html.EscapeString(msg.Message) + `</p>`)
	b.WriteString(`</div></div>`)
	return b.String()
}

func contactConfirmationBody(msg *entity.ContactMessage) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #6366f1;">Thank You for Contacting BillFlow</h2>`)
	b.WriteString(`<p>Hi ` + html.EscapeString(msg.Name) + `,</p>`)
	b.WriteString(`<p>We've received your message and our support team will get back to you within 24 hours.</p>`)
	b.WriteString(`<div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #374151;">Your Message Summary:</h3>`)
	b.WriteString(`<p><strong>Subject:</strong> ` + html.EscapeString(msg.Subject) + `</p>`)
	b.WriteString(`<p style="white-space: pre-wrap;">` + html.EscapeString(msg.Message) + `</p>`)
	b.WriteString(`</div>`)
	b.WriteString(`<p>If you have any urgent questions, feel free to call us at <strong>1-800-BILLFLOW</strong>.</p>`)
	b.WriteString(`<p style="margin-top: 30px;">Best regards,<br><strong>BillFlow Support Team</strong></p>`)
	b.WriteString(`</div>`)
	return b.String()
}
