package product_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"musicmerchant/internal/domain"
	"musicmerchant/internal/migrate"
	"musicmerchant/internal/repository/product"
)

type postgresRepoSuite struct {
	suite.Suite

	pool *pgxpool.Pool
	repo product.Repository
}

func TestPostgresRepoSuite(t *testing.T) {
	suite.Run(t, new(postgresRepoSuite))
}

func (s *postgresRepoSuite) SetupSuite() {
	t := s.T()
	ctx := context.Background()

	s.pool = testPool(ctx, t)
	require.NoError(t, migrate.Apply(ctx, s.pool, nil))
	s.repo = product.NewPostgres(s.pool, nil)
}

func (s *postgresRepoSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *postgresRepoSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE products RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *postgresRepoSuite) TestCreateThenList() {
	t := s.T()
	ctx := context.Background()

	want := randomProduct()
	created, err := s.repo.Create(ctx, want)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, *created, decimalEqual))

	list, err := s.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, cmp.Diff(want, list[0], decimalEqual))
}

func (s *postgresRepoSuite) TestListKeepsInsertionOrder() {
	t := s.T()
	ctx := context.Background()

	var ids []string
	for range 5 {
		p, err := s.repo.Create(ctx, randomProduct())
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	list, err := s.repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(ids))
	for i, p := range list {
		assert.Equal(t, ids[i], p.ID)
	}
}

func (s *postgresRepoSuite) TestReplace() {
	t := s.T()
	ctx := context.Background()

	orig, err := s.repo.Create(ctx, randomProduct())
	require.NoError(t, err)

	next := randomProduct()
	next.ID = orig.ID
	got, err := s.repo.Replace(ctx, next)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(next, *got, decimalEqual))

	fetched, err := s.repo.GetByID(ctx, orig.ID)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(next, *fetched, decimalEqual))
}

func (s *postgresRepoSuite) TestReplaceMissingDoesNotMutate() {
	t := s.T()
	ctx := context.Background()

	_, err := s.repo.Create(ctx, randomProduct())
	require.NoError(t, err)
	before, err := s.repo.List(ctx)
	require.NoError(t, err)

	_, err = s.repo.Replace(ctx, randomProduct())
	require.ErrorIs(t, err, domain.ErrNotFound)

	after, err := s.repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, after, decimalEqual))
}

func (s *postgresRepoSuite) TestDeleteIsIdempotent() {
	t := s.T()
	ctx := context.Background()

	p, err := s.repo.Create(ctx, randomProduct())
	require.NoError(t, err)

	require.NoError(t, s.repo.Delete(ctx, p.ID))
	require.NoError(t, s.repo.Delete(ctx, p.ID))

	_, err = s.repo.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (s *postgresRepoSuite) TestUpsertKeepsID() {
	t := s.T()
	ctx := context.Background()

	p := randomProduct()
	_, err := s.repo.Upsert(ctx, p)
	require.NoError(t, err)

	p.Name = "updated by import"
	got, err := s.repo.Upsert(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "updated by import", got.Name)

	n, err := s.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func (s *postgresRepoSuite) TestApplyOnCurrentSchemaIsNoop() {
	t := s.T()
	core, logs := observer.New(zap.InfoLevel)

	require.NoError(t, migrate.Apply(context.Background(), s.pool, zap.New(core)))

	entries := logs.FilterMessage("schema up to date").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].ContextMap()["version"])
}

func (s *postgresRepoSuite) TestMaxPriceRoundTrips() {
	t := s.T()
	ctx := context.Background()

	want := randomProduct()
	want.Price = domain.MaxPrice
	created, err := s.repo.Create(ctx, want)
	require.NoError(t, err)
	assert.True(t, created.Price.Equal(domain.MaxPrice), "got %s", created.Price)

	got, err := s.repo.GetByID(ctx, want.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(domain.MaxPrice), "got %s", got.Price)
}

func (s *postgresRepoSuite) TestSeedIfEmpty() {
	t := s.T()
	ctx := context.Background()
	seed := []domain.Product{randomProduct(), randomProduct(), randomProduct()}

	n, err := s.repo.SeedIfEmpty(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.repo.SeedIfEmpty(ctx, []domain.Product{randomProduct()})
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := s.repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		testcontainers.SkipIfProviderIsNotHealthy(t)
		container, err := postgres.Run(ctx, "postgres:17.6-alpine3.22", postgres.BasicWaitStrategies())
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(container); err != nil {
				t.Logf("terminate container: %v", err)
			}
		})
		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	return pool
}
