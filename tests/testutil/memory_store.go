package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// MemoryStore is an in-memory stand-in for the relational store. It enforces the
// primary key on products and the foreign key from view counters to products.
type MemoryStore struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	views    map[int64]int64
	err      error
}

var (
	_ contracts.ProductRepository = (*MemoryStore)(nil)
	_ contracts.ViewRepository    = (*MemoryStore)(nil)
	_ contracts.ReadModel         = (*MemoryStore)(nil)
	_ contracts.HealthChecker     = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]*domain.Product),
		views:    make(map[int64]int64),
	}
}

// FailWith makes every following call return err (nil restores normal behaviour).
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Product returns the stored product, if any.
func (s *MemoryStore) Product(id int64) (*domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

// ViewCount returns the counter row for id, if any.
func (s *MemoryStore) ViewCount(id int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.views[id]
	return n, ok
}

// ProductCount returns the number of product rows.
func (s *MemoryStore) ProductCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *MemoryStore) Insert(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[product.ID()]; ok {
		return domain.NewError(domain.KindDuplicate, "duplicate entry found", nil)
	}
	s.products[product.ID()] = product
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[productID]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.views, productID)
	delete(s.products, productID)
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, productID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.products[productID]
	return ok, nil
}

func (s *MemoryStore) Increment(_ context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[productID]; !ok {
		return domain.NewError(domain.KindReferential, "foreign key constraint violation", nil)
	}
	s.views[productID]++
	return nil
}

func (s *MemoryStore) SearchByName(_ context.Context, name string, limit int) ([]*contracts.ProductDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	result := make([]*contracts.ProductDTO, 0)
	for _, p := range s.products {
		if !SoundsLike(p.Name(), name) {
			continue
		}
		dto := s.toDTO(p)
		if n, ok := s.views[p.ID()]; ok {
			dto.ViewCount = &n
		}
		result = append(result, dto)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ProductID > result[j].ProductID })
	return truncate(result, limit), nil
}

func (s *MemoryStore) ListTopViewed(_ context.Context, limit int) ([]*contracts.ProductDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	result := make([]*contracts.ProductDTO, 0, len(s.products))
	for _, p := range s.products {
		dto := s.toDTO(p)
		n := s.views[p.ID()]
		dto.ViewCount = &n
		result = append(result, dto)
	}

	sort.Slice(result, func(i, j int) bool {
		if *result[i].ViewCount != *result[j].ViewCount {
			return *result[i].ViewCount > *result[j].ViewCount
		}
		return result[i].ProductID > result[j].ProductID
	})
	return truncate(result, limit), nil
}

func (s *MemoryStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *MemoryStore) toDTO(p *domain.Product) *contracts.ProductDTO {
	return &contracts.ProductDTO{
		ProductID:   p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		ImageRef:    p.ImageRef(),
		Price:       p.Price().Float64(),
	}
}

func truncate(products []*contracts.ProductDTO, limit int) []*contracts.ProductDTO {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
