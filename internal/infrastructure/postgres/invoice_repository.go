package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository on PostgreSQL. Line items are
// stored as a JSONB column; money columns are NUMERIC and scan as decimals.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// lineItemRow is the JSONB shape of one line item.
type lineItemRow struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func marshalItems(items []entity.LineItem) ([]byte, error) {
	rows := make([]lineItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, lineItemRow{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return json.Marshal(rows)
}

func unmarshalItems(data []byte) ([]entity.LineItem, error) {
	var rows []lineItemRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	items := make([]entity.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.LineItem{
			Description: row.Description,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		})
	}
	return items, nil
}

const invoiceColumns = `
	id, invoice_number, client_id, issue_date, due_date, items,
	tax_rate, discount_amount, discount_type,
	subtotal, tax_amount, discount_total, total,
	status, notes, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var itemsJSON []byte
	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.IssueDate, &inv.DueDate, &itemsJSON,
		&inv.TaxRate, &inv.DiscountAmount, &inv.DiscountType,
		&inv.Subtotal, &inv.TaxAmount, &inv.DiscountTotal, &inv.Total,
		&inv.Status, &inv.Notes, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Items, err = unmarshalItems(itemsJSON)
	if err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepo) queryMany(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// List returns all invoices ordered by id.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	return r.queryMany(`SELECT` + invoiceColumns + ` FROM invoices ORDER BY id`)
}

// ListByClient returns one client's invoices ordered by id.
func (r *InvoiceRepo) ListByClient(clientID int) ([]*entity.Invoice, error) {
	return r.queryMany(`SELECT`+invoiceColumns+` FROM invoices WHERE client_id = $1 ORDER BY id`, clientID)
}

// GetByID returns one invoice, or (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(id int) (*entity.Invoice, error) {
	query := `SELECT` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// NextID returns max(id)+1, or 1 for an empty table.
func (r *InvoiceRepo) NextID() (int, error) {
	var next int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(id), 0) + 1 FROM invoices`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next invoice id: %w", err)
	}
	return next, nil
}

// Insert persists a new invoice with its line items.
func (r *InvoiceRepo) Insert(inv *entity.Invoice) error {
	itemsJSON, err := marshalItems(inv.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = r.pool.Exec(context.Background(), query,
		inv.ID, inv.InvoiceNumber, inv.ClientID, inv.IssueDate, inv.DueDate, itemsJSON,
		inv.TaxRate, inv.DiscountAmount, inv.DiscountType,
		inv.Subtotal, inv.TaxAmount, inv.DiscountTotal, inv.Total,
		inv.Status, inv.Notes, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Replace overwrites an invoice record. The id, invoice number, client
// reference and created_at never change after creation.
func (r *InvoiceRepo) Replace(id int, inv *entity.Invoice) error {
	itemsJSON, err := marshalItems(inv.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	query := `
		UPDATE invoices SET
			issue_date = $2, due_date = $3, items = $4,
			tax_rate = $5, discount_amount = $6, discount_type = $7,
			subtotal = $8, tax_amount = $9, discount_total = $10, total = $11,
			status = $12, notes = $13, updated_at = $14
		WHERE id = $1`
	_, err = r.pool.Exec(context.Background(), query,
		id, inv.IssueDate, inv.DueDate, itemsJSON,
		inv.TaxRate, inv.DiscountAmount, inv.DiscountType,
		inv.Subtotal, inv.TaxAmount, inv.DiscountTotal, inv.Total,
		inv.Status, inv.Notes, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Remove deletes an invoice and reports whether a row was removed.
func (r *InvoiceRepo) Remove(id int) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
