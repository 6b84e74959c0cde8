package product

import (
	"context"
	"fmt"
	"sync"

	"musicmerchant/internal/domain"
)

// MemoryRepo keeps products in insertion order in process memory. It backs
// the API when no database is configured and the handler tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemory() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) List(_ context.Context) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(id); i >= 0 {
		p := m.products[i]
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

func (m *MemoryRepo) Create(_ context.Context, product domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(product.ID) >= 0 {
		return nil, fmt.Errorf("product %s already exists", product.ID)
	}
	m.products = append(m.products, product)
	return &product, nil
}

func (m *MemoryRepo) Replace(_ context.Context, product domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(product.ID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	m.products[i] = product
	return &product, nil
}

func (m *MemoryRepo) Upsert(_ context.Context, product domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(product.ID); i >= 0 {
		m.products[i] = product
	} else {
		m.products = append(m.products, product)
	}
	return &product, nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(id); i >= 0 {
		m.products = append(m.products[:i], m.products[i+1:]...)
	}
	return nil
}

func (m *MemoryRepo) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), nil
}

func (m *MemoryRepo) SeedIfEmpty(_ context.Context, products []domain.Product) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.products) > 0 {
		return 0, nil
	}
	m.products = append(m.products, products...)
	return len(products), nil
}

func (m *MemoryRepo) Ping(context.Context) error {
	return nil
}

func (m *MemoryRepo) indexOf(id string) int {
	for i, p := range m.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

var _ Repository = (*MemoryRepo)(nil)
