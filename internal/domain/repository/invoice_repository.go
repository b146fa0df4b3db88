package repository

import "github.com/billflow/billflow-api/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices.
// GetByID returns (nil, nil) when the id is unknown; callers map that to a
// not-found error. Remove reports whether a record was deleted.
type InvoiceRepository interface {
	List() ([]*entity.Invoice, error)
	ListByClient(clientID int) ([]*entity.Invoice, error)
	GetByID(id int) (*entity.Invoice, error)
	// NextID returns max existing id + 1, or 1 when the store is empty.
	NextID() (int, error)
	Insert(invoice *entity.Invoice) error
	Replace(id int, invoice *entity.Invoice) error
	Remove(id int) (bool, error)
}
