package product_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"musicmerchant/internal/domain"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func randomProduct() domain.Product {
	category := domain.Categories[gofakeit.Number(0, len(domain.Categories)-1)]
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(8),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 2000)).Round(2),
		Category:    category,
		Type:        gofakeit.ProductCategory(),
		Image:       gofakeit.URL(),
	}
	if category == domain.CategorySheetMusic {
		p.Composer = gofakeit.Name()
		p.Difficulty = domain.DifficultyBeginner
		p.Genre = gofakeit.HipsterWord()
	} else {
		p.Brand = gofakeit.Company()
		p.Model = gofakeit.LetterN(3) + "-" + gofakeit.DigitN(2)
	}
	return p
}
