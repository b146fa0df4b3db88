package memory

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/billflow/billflow-api/internal/domain/entity"
)

//go:embed seed/clients.json seed/invoices.json seed/testimonials.json seed/plan_comparison.json
var seedFS embed.FS

const seedDateFormat = "2006-01-02"

type seedAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type seedClient struct {
	ID            int         `json:"id"`
	CompanyName   string      `json:"company_name"`
	ContactPerson string      `json:"contact_person"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Billing       seedAddress `json:"billing"`
	Notes         string      `json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
}

type seedLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type seedInvoice struct {
	ID             int             `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	ClientID       int             `json:"client_id"`
	IssueDate      string          `json:"issue_date"`
	DueDate        string          `json:"due_date"`
	Items          []seedLineItem  `json:"items"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountType   string          `json:"discount_type"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountTotal  decimal.Decimal `json:"discount_total"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"created_at"`
}

type seedTestimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Featured bool   `json:"featured"`
}

type seedPlanComparison struct {
	Plans []struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		MonthlyPrice string `json:"monthly_price"`
		Highlighted  bool   `json:"highlighted"`
	} `json:"plans"`
	FeatureCategories []struct {
		Name     string `json:"name"`
		Features []struct {
			Name   string   `json:"name"`
			Values []string `json:"values"`
		} `json:"features"`
	} `json:"feature_categories"`
}

func (s *Store) loadSeed() error {
	var clients []seedClient
	if err := readSeed("seed/clients.json", &clients); err != nil {
		return err
	}
	for _, c := range clients {
		s.clients[c.ID] = &entity.Client{
			ID:            c.ID,
			CompanyName:   c.CompanyName,
			ContactPerson: c.ContactPerson,
			Email:         c.Email,
			Phone:         c.Phone,
			Billing: entity.Address{
				Street: c.Billing.Street,
				City:   c.Billing.City,
				State:  c.Billing.State,
				Zip:    c.Billing.Zip,
			},
			Notes:     c.Notes,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.CreatedAt,
		}
	}

	var invoices []seedInvoice
	if err := readSeed("seed/invoices.json", &invoices); err != nil {
		return err
	}
	for _, in := range invoices {
		issue, err := time.Parse(seedDateFormat, in.IssueDate)
		if err != nil {
			return fmt.Errorf("seed invoice %d: issue_date: %w", in.ID, err)
		}
		due, err := time.Parse(seedDateFormat, in.DueDate)
		if err != nil {
			return fmt.Errorf("seed invoice %d: due_date: %w", in.ID, err)
		}
		items := make([]entity.LineItem, 0, len(in.Items))
		for _, item := range in.Items {
			items = append(items, entity.LineItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
			})
		}
		s.invoices[in.ID] = &entity.Invoice{
			ID:             in.ID,
			InvoiceNumber:  in.InvoiceNumber,
			ClientID:       in.ClientID,
			IssueDate:      issue,
			DueDate:        due,
			Items:          items,
			TaxRate:        in.TaxRate,
			DiscountAmount: in.DiscountAmount,
			DiscountType:   in.DiscountType,
			Subtotal:       in.Subtotal,
			TaxAmount:      in.TaxAmount,
			DiscountTotal:  in.DiscountTotal,
			Total:          in.Total,
			Status:         in.Status,
			Notes:          in.Notes,
			CreatedAt:      in.CreatedAt,
			UpdatedAt:      in.CreatedAt,
		}
	}

	var testimonials []seedTestimonial
	if err := readSeed("seed/testimonials.json", &testimonials); err != nil {
		return err
	}
	for _, t := range testimonials {
		s.testimonials = append(s.testimonials, &entity.Testimonial{
			ID:       t.ID,
			Name:     t.Name,
			Role:     t.Role,
			Company:  t.Company,
			Quote:    t.Quote,
			Rating:   t.Rating,
			Featured: t.Featured,
		})
	}

	var comparison seedPlanComparison
	if err := readSeed("seed/plan_comparison.json", &comparison); err != nil {
		return err
	}
	for _, p := range comparison.Plans {
		s.plans = append(s.plans, &entity.Plan{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			MonthlyPrice: p.MonthlyPrice,
			Highlighted:  p.Highlighted,
		})
	}
	for _, cat := range comparison.FeatureCategories {
		c := &entity.FeatureCategory{Name: cat.Name}
		for _, f := range cat.Features {
			c.Features = append(c.Features, entity.PlanFeature{Name: f.Name, Values: f.Values})
		}
		s.categories = append(s.categories, c)
	}
	return nil
}

func readSeed(name string, v any) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
