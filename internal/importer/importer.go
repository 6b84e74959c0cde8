package importer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"musicmerchant/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV files and inserts/updates products.
type CSVImporter struct {
	in     io.Reader
	writer ProductWriter
}

func NewCSVImporter(r io.Reader, writer ProductWriter) *CSVImporter {
	return &CSVImporter{in: r, writer: writer}
}

type csvRow struct {
	ID          string `csv:"id"`
	Name        string `csv:"name"`
	Description string `csv:"description"`
	Price       string `csv:"price"`
	Category    string `csv:"category"`
	Type        string `csv:"type"`
	Composer    string `csv:"composer"`
	Difficulty  string `csv:"difficulty"`
	Genre       string `csv:"genre"`
	Brand       string `csv:"brand"`
	Model       string `csv:"model"`
	Image       string `csv:"image"`
}

// Run upserts every row in file order and returns how many were written.
// The first bad row stops the import; rows before it stay written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	var rows []*csvRow
	if err := gocsv.Unmarshal(i.in, &rows); err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}

	imported := 0
	for n, row := range rows {
		// header is line 1
		line := n + 2
		p, err := row.product()
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", line, err)
		}
		if _, err := i.writer.Upsert(ctx, p); err != nil {
			return imported, fmt.Errorf("row %d: upsert product %q: %w", line, p.Name, err)
		}
		imported++
	}
	return imported, nil
}

func (r *csvRow) product() (domain.Product, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(r.Price), "$")
	if raw == "" {
		return domain.Product{}, fmt.Errorf("%w: price is required", domain.ErrValidation)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: invalid price %q", domain.ErrValidation, r.Price)
	}
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Category:    domain.Category(strings.TrimSpace(r.Category)),
		Type:        r.Type,
		Composer:    r.Composer,
		Difficulty:  domain.Difficulty(strings.TrimSpace(r.Difficulty)),
		Genre:       r.Genre,
		Brand:       r.Brand,
		Model:       r.Model,
		Image:       r.Image,
	}, nil
}
