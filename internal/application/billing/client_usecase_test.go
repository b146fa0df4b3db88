package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/billflow/billflow-api/internal/application/billing"
	"github.com/billflow/billflow-api/internal/application/dto"
	"github.com/billflow/billflow-api/internal/domain"
	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/infrastructure/memory"
)

func newClientUC(t *testing.T) (*appbilling.ClientUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewEmptyStore()
	return appbilling.NewClientUseCase(store.Clients()), store
}

func TestClientCreate_AssignsNextID(t *testing.T) {
	uc, store := newClientUC(t)
	require.NoError(t, store.Clients().Insert(&entity.Client{ID: 7, CompanyName: "Existing Co"}))

	client, err := uc.Create(dto.ClientRequest{
		CompanyName:   "Acme Design Studio",
		ContactPerson: "Sarah Mitchell",
		Email:         "sarah@acmedesign.example",
		Billing:       dto.AddressRequest{City: "Portland", State: "OR"},
	})
	require.NoError(t, err)

	assert.Equal(t, 8, client.ID, "id is max+1, not count+1")
	assert.Equal(t, "Acme Design Studio", client.CompanyName)
	assert.Equal(t, "Portland", client.Billing.City)
	assert.NotEmpty(t, client.CreatedAt)
}

func TestClientCreate_RequiresCompanyName(t *testing.T) {
	uc, _ := newClientUC(t)
	_, err := uc.Create(dto.ClientRequest{CompanyName: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientUpdate_PreservesCreatedAt(t *testing.T) {
	uc, _ := newClientUC(t)
	created, err := uc.Create(dto.ClientRequest{CompanyName: "Northwind Consulting"})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.ClientRequest{
		CompanyName: "Northwind Consulting LLC",
		Phone:       "555-0177",
	})
	require.NoError(t, err)

	assert.Equal(t, "Northwind Consulting LLC", updated.CompanyName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestClientUpdate_NotFound(t *testing.T) {
	uc, _ := newClientUC(t)
	_, err := uc.Update(42, dto.ClientRequest{CompanyName: "Ghost Co"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientDelete(t *testing.T) {
	uc, _ := newClientUC(t)
	created, err := uc.Create(dto.ClientRequest{CompanyName: "Bluefin Analytics"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.Get(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientDelete_KeepsInvoices(t *testing.T) {
	store := memory.NewEmptyStore()
	clientUC := appbilling.NewClientUseCase(store.Clients())
	created, err := clientUC.Create(dto.ClientRequest{CompanyName: "Acme Design Studio"})
	require.NoError(t, err)
	require.NoError(t, store.Invoices().Insert(&entity.Invoice{
		ID: 1, InvoiceNumber: "INV-2025-0001", ClientID: created.ID, Status: entity.StatusSent,
	}))

	require.NoError(t, clientUC.Delete(created.ID))

	inv, err := store.Invoices().GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, inv, "invoices outlive their client")
}

func TestClientList_SortedByID(t *testing.T) {
	uc, store := newClientUC(t)
	require.NoError(t, store.Clients().Insert(&entity.Client{ID: 3, CompanyName: "C"}))
	require.NoError(t, store.Clients().Insert(&entity.Client{ID: 1, CompanyName: "A"}))
	require.NoError(t, store.Clients().Insert(&entity.Client{ID: 2, CompanyName: "B"}))

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].ID, list[1].ID, list[2].ID})
}
