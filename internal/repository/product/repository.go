package product

import (
	"context"

	"musicmerchant/internal/domain"
)

// Repository persists catalog products. Every method is a single round trip
// against the store; Replace and GetByID return domain.ErrNotFound for an
// unknown id.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Replace(ctx context.Context, product domain.Product) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// SeedIfEmpty inserts products only when the store holds none and
	// reports how many were inserted. The check and the insert are atomic.
	SeedIfEmpty(ctx context.Context, products []domain.Product) (int, error)
	Ping(ctx context.Context) error
}
