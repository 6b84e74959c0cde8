package product

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicmerchant/internal/domain"
	productrepo "musicmerchant/internal/repository/product"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestService(repo productrepo.Repository) *Service {
	svc := New(repo, nil)
	n := 0
	svc.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return svc
}

func TestServiceCreateAssignsIDAndNormalizes(t *testing.T) {
	repo := productrepo.NewMemory()
	svc := newTestService(repo)

	got, err := svc.Create(context.Background(), Input{
		Name:     " Yamaha C40 ",
		Price:    price("149.99"),
		Category: domain.CategoryInstruments,
		Type:     "Classical Guitar",
		Brand:    "Yamaha",
		Composer: "ignored for instruments",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "Yamaha C40", got.Name)
	assert.Empty(t, got.Composer)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *got, list[0])
}

func TestServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"missing name", Input{Price: price("1"), Category: domain.CategoryAccessories}},
		{"missing price", Input{Name: "x", Category: domain.CategoryAccessories}},
		{"negative price", Input{Name: "x", Price: price("-0.01"), Category: domain.CategoryAccessories}},
		{"sub-cent price", Input{Name: "x", Price: price("1.999"), Category: domain.CategoryAccessories}},
		{"price above maximum", Input{Name: "x", Price: price("10000000000"), Category: domain.CategoryAccessories}},
		{"image is not a url", Input{Name: "x", Price: price("1"), Category: domain.CategoryAccessories, Image: "not a url"}},
		{"unknown category", Input{Name: "x", Price: price("1"), Category: "vinyl"}},
		{"unknown difficulty", Input{Name: "x", Price: price("1"), Category: domain.CategorySheetMusic, Difficulty: "Expert"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := productrepo.NewMemory()
			_, err := newTestService(repo).Create(context.Background(), tt.in)
			require.ErrorIs(t, err, domain.ErrValidation)

			n, _ := repo.Count(context.Background())
			assert.Zero(t, n)
		})
	}
}

func TestServiceCreateAcceptsZeroPrice(t *testing.T) {
	svc := newTestService(productrepo.NewMemory())
	got, err := svc.Create(context.Background(), Input{Name: "Free chart", Price: price("0"), Category: domain.CategorySheetMusic})
	require.NoError(t, err)
	assert.True(t, got.Price.IsZero())
}

func TestServiceCreateAcceptsMaxPrice(t *testing.T) {
	svc := newTestService(productrepo.NewMemory())
	got, err := svc.Create(context.Background(), Input{Name: "Concert grand", Price: price("9999999999.99"), Category: domain.CategoryInstruments})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(domain.MaxPrice))
}

func TestServiceReplace(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewMemory()
	svc := newTestService(repo)

	created, err := svc.Create(ctx, Input{Name: "Canon in D", Price: price("8.99"), Category: domain.CategorySheetMusic})
	require.NoError(t, err)

	got, err := svc.Replace(ctx, created.ID, Input{Name: "Canon in D (easy)", Price: price("6.50"), Category: domain.CategorySheetMusic, Difficulty: domain.DifficultyBeginner})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Canon in D (easy)", got.Name)
	assert.Equal(t, domain.DifficultyBeginner, got.Difficulty)
}

func TestServiceReplaceMissingIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewMemory()
	svc := newTestService(repo)

	_, err := svc.Create(ctx, Input{Name: "Canon in D", Price: price("8.99"), Category: domain.CategorySheetMusic})
	require.NoError(t, err)
	before, _ := svc.List(ctx)

	_, err = svc.Replace(ctx, "missing", Input{Name: "x", Price: price("1"), Category: domain.CategorySheetMusic})
	require.ErrorIs(t, err, domain.ErrNotFound)

	after, _ := svc.List(ctx)
	assert.Equal(t, before, after)
}

func TestServiceUpsertGeneratesMissingID(t *testing.T) {
	svc := newTestService(productrepo.NewMemory())

	got, err := svc.Upsert(context.Background(), domain.Product{Name: "Mute", Price: decimal.RequireFromString("45.99"), Category: domain.CategoryAccessories})
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)

	kept, err := svc.Upsert(context.Background(), domain.Product{ID: "fixed", Name: "Mute", Price: decimal.RequireFromString("45.99"), Category: domain.CategoryAccessories})
	require.NoError(t, err)
	assert.Equal(t, "fixed", kept.ID)
}

func TestServiceUpsertAppliesFieldRules(t *testing.T) {
	repo := productrepo.NewMemory()
	svc := newTestService(repo)

	_, err := svc.Upsert(context.Background(), domain.Product{Name: "Mute", Price: decimal.RequireFromString("45.99"), Category: domain.CategoryAccessories, Image: "mute.jpg"})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Upsert(context.Background(), domain.Product{Name: "Mute", Price: decimal.RequireFromString("10000000000"), Category: domain.CategoryAccessories})
	require.ErrorIs(t, err, domain.ErrValidation)

	n, _ := repo.Count(context.Background())
	assert.Zero(t, n)
}

type failingRepo struct {
	productrepo.Repository
	err error
}

func (f failingRepo) Delete(context.Context, string) error { return f.err }

func TestServiceDeletePropagatesStoreError(t *testing.T) {
	boom := errors.New("boom")
	svc := New(failingRepo{err: boom}, nil)
	require.ErrorIs(t, svc.Delete(context.Background(), "x"), boom)
}
