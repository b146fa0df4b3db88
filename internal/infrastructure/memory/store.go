// Package memory implements the repository ports against an in-process map
// seeded from embedded JSON. It backs the development mode (no database
// configured) and the test suites. Reads hand out copies so callers can
// never mutate stored records behind the store's back.
package memory

import (
	"sort"
	"sync"

	"github.com/billflow/billflow-api/internal/domain/entity"
	"github.com/billflow/billflow-api/internal/domain/repository"
)

// Store holds all in-memory collections behind one lock.
type Store struct {
	mu           sync.RWMutex
	clients      map[int]*entity.Client
	invoices     map[int]*entity.Invoice
	testimonials []*entity.Testimonial
	plans        []*entity.Plan
	categories   []*entity.FeatureCategory
}

// NewStore returns a store loaded with the embedded seed data.
func NewStore() (*Store, error) {
	s := NewEmptyStore()
	if err := s.loadSeed(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewEmptyStore returns a store with no records; used by tests.
func NewEmptyStore() *Store {
	return &Store{
		clients:  make(map[int]*entity.Client),
		invoices: make(map[int]*entity.Invoice),
	}
}

// Clients returns the client repository view of the store.
func (s *Store) Clients() repository.ClientRepository { return &clientRepo{s: s} }

// Invoices returns the invoice repository view of the store.
func (s *Store) Invoices() repository.InvoiceRepository { return &invoiceRepo{s: s} }

// Content returns the content repository view of the store.
func (s *Store) Content() repository.ContentRepository { return &contentRepo{s: s} }

// ── clients ───────────────────────────────────────────────────────────────────

type clientRepo struct {
	s *Store
}

var _ repository.ClientRepository = (*clientRepo)(nil)

func (r *clientRepo) List() ([]*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, cloneClient(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *clientRepo) GetByID(id int) (*entity.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return cloneClient(c), nil
}

func (r *clientRepo) NextID() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	max := 0
	for id := range r.s.clients {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (r *clientRepo) Insert(client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *clientRepo) Replace(id int, client *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[id] = cloneClient(client)
	return nil
}

func (r *clientRepo) Remove(id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clients[id]; !ok {
		return false, nil
	}
	delete(r.s.clients, id)
	return true, nil
}

// ── invoices ──────────────────────────────────────────────────────────────────

type invoiceRepo struct {
	s *Store
}

var _ repository.InvoiceRepository = (*invoiceRepo)(nil)

func (r *invoiceRepo) List() ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		out = append(out, cloneInvoice(inv))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *invoiceRepo) ListByClient(clientID int) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.ClientID == clientID {
			out = append(out, cloneInvoice(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *invoiceRepo) GetByID(id int) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(inv), nil
}

func (r *invoiceRepo) NextID() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	max := 0
	for id := range r.s.invoices {
		if id > max {
			max = id
		}
	}
	return max + 1, nil
}

func (r *invoiceRepo) Insert(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices[invoice.ID] = cloneInvoice(invoice)
	return nil
}

func (r *invoiceRepo) Replace(id int, invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices[id] = cloneInvoice(invoice)
	return nil
}

func (r *invoiceRepo) Remove(id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return false, nil
	}
	delete(r.s.invoices, id)
	return true, nil
}

// ── content ───────────────────────────────────────────────────────────────────

type contentRepo struct {
	s *Store
}

var _ repository.ContentRepository = (*contentRepo)(nil)

func (r *contentRepo) Testimonials() ([]*entity.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Testimonial, 0, len(r.s.testimonials))
	for _, t := range r.s.testimonials {
		c := *t
		out = append(out, &c)
	}
	return out, nil
}

func (r *contentRepo) GetTestimonial(id int) (*entity.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.testimonials {
		if t.ID == id {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (r *contentRepo) Plans() ([]*entity.Plan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Plan, 0, len(r.s.plans))
	for _, p := range r.s.plans {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (r *contentRepo) GetPlan(id int) (*entity.Plan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.plans {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *contentRepo) FeatureCategories() ([]*entity.FeatureCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.FeatureCategory, 0, len(r.s.categories))
	for _, cat := range r.s.categories {
		c := entity.FeatureCategory{Name: cat.Name}
		for _, f := range cat.Features {
			c.Features = append(c.Features, entity.PlanFeature{
				Name:   f.Name,
				Values: append([]string(nil), f.Values...),
			})
		}
		out = append(out, &c)
	}
	return out, nil
}

// ── clone helpers ─────────────────────────────────────────────────────────────

func cloneClient(c *entity.Client) *entity.Client {
	cp := *c
	return &cp
}

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	cp := *inv
	cp.Items = append([]entity.LineItem(nil), inv.Items...)
	return &cp
}
