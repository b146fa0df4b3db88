package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/billflow/billflow-api/internal/application/dto"
	"github.com/billflow/billflow-api/internal/domain"
	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/domain/repository"
)

// ClientUseCase handles client CRUD. Deleting a client does not touch its
// invoices; invoice responses simply lose the joined name.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase builds the usecase.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create stores a new client with the next available id.
func (uc *ClientUseCase) Create(in dto.ClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, fmt.Errorf("%w: company_name is required", domain.ErrInvalidInput)
	}
	id, err := uc.repo.NextID()
	if err != nil {
		return nil, fmt.Errorf("next client id: %w", err)
	}
	now := time.Now()
	client := &entity.Client{
		ID:            id,
		CompanyName:   in.CompanyName,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Billing: entity.Address{
			Street: in.Billing.Street,
			City:   in.Billing.City,
			State:  in.Billing.State,
			Zip:    in.Billing.Zip,
		},
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Insert(client); err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return toClientResponse(client), nil
}

// Update replaces the editable fields; id and createdAt are preserved.
func (uc *ClientUseCase) Update(id int, in dto.ClientRequest) (*dto.ClientResponse, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, fmt.Errorf("%w: company_name is required", domain.ErrInvalidInput)
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client %d", domain.ErrNotFound, id)
	}
	client.CompanyName = in.CompanyName
	client.ContactPerson = in.ContactPerson
	client.Email = in.Email
	client.Phone = in.Phone
	client.Billing = entity.Address{
		Street: in.Billing.Street,
		City:   in.Billing.City,
		State:  in.Billing.State,
		Zip:    in.Billing.Zip,
	}
	client.Notes = in.Notes
	client.UpdatedAt = time.Now()
	if err := uc.repo.Replace(id, client); err != nil {
		return nil, fmt.Errorf("replace client: %w", err)
	}
	return toClientResponse(client), nil
}

// Delete removes a client.
func (uc *ClientUseCase) Delete(id int) error {
	removed, err := uc.repo.Remove(id)
	if err != nil {
		return fmt.Errorf("remove client: %w", err)
	}
	if !removed {
		return fmt.Errorf("%w: client %d", domain.ErrNotFound, id)
	}
	return nil
}

// Get returns one client.
func (uc *ClientUseCase) Get(id int) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: client %d", domain.ErrNotFound, id)
	}
	return toClientResponse(client), nil
}

// List returns all clients.
func (uc *ClientUseCase) List() ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:            c.ID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Billing: dto.AddressRequest{
			Street: c.Billing.Street,
			City:   c.Billing.City,
			State:  c.Billing.State,
			Zip:    c.Billing.Zip,
		},
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
