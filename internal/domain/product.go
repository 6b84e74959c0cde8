package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, the way storefront clients send them.
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxPrice is the largest price a NUMERIC(12,2) column holds.
var MaxPrice = decimal.RequireFromString("9999999999.99")

// Category is the closed set of catalog sections.
type Category string

const (
	CategorySheetMusic  Category = "sheet-music"
	CategoryInstruments Category = "instruments"
	CategoryAccessories Category = "accessories"
)

// Categories lists every valid Category in display order.
var Categories = []Category{CategorySheetMusic, CategoryInstruments, CategoryAccessories}

func (c Category) Valid() bool {
	switch c {
	case CategorySheetMusic, CategoryInstruments, CategoryAccessories:
		return true
	}
	return false
}

// HasGear reports whether brand and model apply to the category.
func (c Category) HasGear() bool {
	return c == CategoryInstruments || c == CategoryAccessories
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Product is a catalog item. Composer, Difficulty and Genre apply to sheet
// music; Brand and Model apply to instruments and accessories.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Type        string          `json:"type"`
	Composer    string          `json:"composer,omitempty"`
	Difficulty  Difficulty      `json:"difficulty,omitempty"`
	Genre       string          `json:"genre,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Model       string          `json:"model,omitempty"`
	Image       string          `json:"image,omitempty"`
}

// Normalize trims text fields and clears attributes that do not apply to
// the product's category.
func (p Product) Normalize() Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Type = strings.TrimSpace(p.Type)
	p.Composer = strings.TrimSpace(p.Composer)
	p.Genre = strings.TrimSpace(p.Genre)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Model = strings.TrimSpace(p.Model)
	p.Image = strings.TrimSpace(p.Image)
	if p.Category != CategorySheetMusic {
		p.Composer, p.Difficulty, p.Genre = "", "", ""
	}
	if !p.Category.HasGear() {
		p.Brand, p.Model = "", ""
	}
	return p
}

// Matches reports whether term is a case-insensitive substring of the
// product's name, composer or brand. An empty term matches everything.
func (p Product) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{p.Name, p.Composer, p.Brand} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// FilterProducts keeps products matching term and, when category is
// non-empty, belonging to it. Input order is preserved.
func FilterProducts(products []Product, term string, category Category) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if !p.Matches(term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
