package product

import (
	"context"
	"errors"
	"fmt"

	"musicmerchant/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// attributes holds the category-conditional fields stored in the jsonb
// column.
type attributes struct {
	Composer   string            `json:"composer,omitempty"`
	Difficulty domain.Difficulty `json:"difficulty,omitempty"`
	Genre      string            `json:"genre,omitempty"`
	Brand      string            `json:"brand,omitempty"`
	Model      string            `json:"model,omitempty"`
}

const selectColumns = `id, name, description, price::text, category, type, attributes, image`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger.Named("product_repo")}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + selectColumns + ` FROM products ORDER BY seq ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("list", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("list rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("list", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `SELECT ` + selectColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("get: not found", zap.String("id", id))
			return nil, domain.ErrNotFound
		}
		r.logger.Error("get", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	q := `
INSERT INTO products (id, name, description, price, category, type, attributes, image)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
RETURNING ` + selectColumns
	p, err := scanProduct(r.pool.QueryRow(ctx, q, insertArgs(product)...))
	if err != nil {
		r.logger.Error("create", zap.String("id", product.ID), zap.Error(err))
		return nil, err
	}
	r.logger.Info("created", zap.String("id", p.ID), zap.String("category", string(p.Category)))
	return p, nil
}

func (r *postgresRepo) Replace(ctx context.Context, product domain.Product) (*domain.Product, error) {
	q := `
UPDATE products
SET name = $2,
    description = $3,
    price = $4::numeric,
    category = $5,
    type = $6,
    attributes = $7,
    image = $8,
    updated_at = now()
WHERE id = $1
RETURNING ` + selectColumns
	p, err := scanProduct(r.pool.QueryRow(ctx, q, insertArgs(product)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("replace: not found", zap.String("id", product.ID))
			return nil, domain.ErrNotFound
		}
		r.logger.Error("replace", zap.String("id", product.ID), zap.Error(err))
		return nil, err
	}
	r.logger.Info("replaced", zap.String("id", p.ID))
	return p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	q := `
INSERT INTO products (id, name, description, price, category, type, attributes, image)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    type = EXCLUDED.type,
    attributes = EXCLUDED.attributes,
    image = EXCLUDED.image,
    updated_at = now()
RETURNING ` + selectColumns
	p, err := scanProduct(r.pool.QueryRow(ctx, q, insertArgs(product)...))
	if err != nil {
		r.logger.Error("upsert", zap.String("id", product.ID), zap.Error(err))
		return nil, err
	}
	r.logger.Info("upserted", zap.String("id", p.ID))
	return p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("delete", zap.String("id", id), zap.Error(err))
		return err
	}
	r.logger.Info("deleted", zap.String("id", id), zap.Int64("rows", cmd.RowsAffected()))
	return nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *postgresRepo) SeedIfEmpty(ctx context.Context, products []domain.Product) (int, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// Blocks concurrent seeders and writers until commit.
	if _, err := tx.Exec(ctx, `LOCK TABLE products IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("lock products: %w", err)
	}

	var n int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		r.logger.Debug("seed skipped", zap.Int("existing", n))
		return 0, nil
	}

	const q = `
INSERT INTO products (id, name, description, price, category, type, attributes, image)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
`
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(q, insertArgs(p)...)
	}
	results := tx.SendBatch(ctx, batch)
	for _, p := range products {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("insert %s: %w", p.ID, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	r.logger.Info("seeded", zap.Int("count", len(products)))
	return len(products), nil
}

func (r *postgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func insertArgs(p domain.Product) []any {
	return []any{
		p.ID,
		p.Name,
		p.Description,
		p.Price.String(),
		string(p.Category),
		p.Type,
		attributes{
			Composer:   p.Composer,
			Difficulty: p.Difficulty,
			Genre:      p.Genre,
			Brand:      p.Brand,
			Model:      p.Model,
		},
		p.Image,
	}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p        domain.Product
		price    string
		category string
		attrs    attributes
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &category, &p.Type, &attrs, &p.Image); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("product %s: parse price %q: %w", p.ID, price, err)
	}
	p.Price = amount
	p.Category = domain.Category(category)
	p.Composer = attrs.Composer
	p.Difficulty = attrs.Difficulty
	p.Genre = attrs.Genre
	p.Brand = attrs.Brand
	p.Model = attrs.Model
	return &p, nil
}
