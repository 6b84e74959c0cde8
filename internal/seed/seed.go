package seed

import (
	"context"
	"fmt"

	"musicmerchant/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeder is the part of the product store the bootstrap needs.
type Seeder interface {
	SeedIfEmpty(ctx context.Context, products []domain.Product) (int, error)
}

// Products returns the sample catalog with freshly generated ids.
func Products() []domain.Product {
	out := make([]domain.Product, len(catalog))
	for i, p := range catalog {
		p.ID = uuid.NewString()
		out[i] = p
	}
	return out
}

// Bootstrap populates an empty store with the sample catalog. A store that
// already holds products is left untouched, so repeated calls never
// duplicate the set. It returns the number of products inserted.
func Bootstrap(ctx context.Context, store Seeder, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	n, err := store.SeedIfEmpty(ctx, Products())
	if err != nil {
		return 0, fmt.Errorf("seed products: %w", err)
	}
	if n == 0 {
		logger.Info("catalog not empty, sample data skipped")
	} else {
		logger.Info("sample data initialized", zap.Int("products", n))
	}
	return n, nil
}
