package repository

import "github.com/billflow/billflow-api/internal/domain/entity"

// ClientRepository is the persistence port for clients.
// GetByID returns (nil, nil) when the id is unknown.
type ClientRepository interface {
	List() ([]*entity.Client, error)
	GetByID(id int) (*entity.Client, error)
	NextID() (int, error)
	Insert(client *entity.Client) error
	Replace(id int, client *entity.Client) error
	Remove(id int) (bool, error)
}
