package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implements ClientRepository on PostgreSQL.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository builds the adapter.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

const clientColumns = `
	id, company_name, contact_person, email, phone,
	billing_street, billing_city, billing_state, billing_zip,
	notes, created_at, updated_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.ContactPerson, &c.Email, &c.Phone,
		&c.Billing.Street, &c.Billing.City, &c.Billing.State, &c.Billing.Zip,
		&c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all clients ordered by id.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT` + clientColumns + ` FROM clients ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID returns one client, or (nil, nil) when absent.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	query := `SELECT` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// NextID returns max(id)+1, or 1 for an empty table.
func (r *ClientRepo) NextID() (int, error) {
	var next int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(id), 0) + 1 FROM clients`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next client id: %w", err)
	}
	return next, nil
}

// Insert persists a new client.
func (r *ClientRepo) Insert(c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.CompanyName, c.ContactPerson, c.Email, c.Phone,
		c.Billing.Street, c.Billing.City, c.Billing.State, c.Billing.Zip,
		c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Replace overwrites a client record.
func (r *ClientRepo) Replace(id int, c *entity.Client) error {
	query := `
		UPDATE clients SET
			company_name = $2, contact_person = $3, email = $4, phone = $5,
			billing_street = $6, billing_city = $7, billing_state = $8, billing_zip = $9,
			notes = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		id, c.CompanyName, c.ContactPerson, c.Email, c.Phone,
		c.Billing.Street, c.Billing.City, c.Billing.State, c.Billing.Zip,
		c.Notes, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Remove deletes a client and reports whether a row was removed.
func (r *ClientRepo) Remove(id int) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
