package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductNormalizeClearsForeignAttributes(t *testing.T) {
	sheet := Product{
		Name:       "  Canon in D ",
		Category:   CategorySheetMusic,
		Composer:   "Johann Pachelbel",
		Difficulty: DifficultyIntermediate,
		Brand:      "Yamaha",
		Model:      "C40",
	}.Normalize()
	assert.Equal(t, "Canon in D", sheet.Name)
	assert.Equal(t, "Johann Pachelbel", sheet.Composer)
	assert.Empty(t, sheet.Brand)
	assert.Empty(t, sheet.Model)

	gear := Product{
		Category:   CategoryAccessories,
		Composer:   "Bach",
		Difficulty: DifficultyAdvanced,
		Genre:      "Classical",
		Brand:      "Korg",
		Model:      "TM-50",
	}.Normalize()
	assert.Empty(t, gear.Composer)
	assert.Empty(t, gear.Difficulty)
	assert.Empty(t, gear.Genre)
	assert.Equal(t, "Korg", gear.Brand)
	assert.Equal(t, "TM-50", gear.Model)
}

func TestProductMatches(t *testing.T) {
	p := Product{Name: "Moonlight Sonata", Composer: "Ludwig van Beethoven"}
	g := Product{Name: "C40 Classical Guitar", Brand: "Yamaha"}

	tests := []struct {
		name    string
		product Product
		term    string
		want    bool
	}{
		{"empty term matches", p, "", true},
		{"name is case-insensitive", p, "moonLIGHT", true},
		{"composer", p, "beethoven", true},
		{"brand", g, "yama", true},
		{"description is not searched", Product{Name: "X", Description: "piano"}, "piano", false},
		{"no match", g, "violin", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.Matches(tt.term))
		})
	}
}

func TestFilterProductsKeepsOrder(t *testing.T) {
	products := []Product{
		{ID: "1", Name: "Hotel California", Category: CategorySheetMusic},
		{ID: "2", Name: "Fender Player Stratocaster", Category: CategoryInstruments, Brand: "Fender"},
		{ID: "3", Name: "Canon in D", Category: CategorySheetMusic},
	}

	got := FilterProducts(products, "", CategorySheetMusic)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	got = FilterProducts(products, "fender", "")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestCartLineJSONIsFlattened(t *testing.T) {
	line := CartLine{
		Product: Product{
			ID:       "p1",
			Name:     "Canon in D",
			Price:    decimal.RequireFromString("8.99"),
			Category: CategorySheetMusic,
		},
		Quantity: 2,
	}

	raw, err := json.Marshal(line)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "p1", fields["id"])
	assert.Equal(t, 8.99, fields["price"])
	assert.Equal(t, float64(2), fields["quantity"])
	assert.True(t, line.Subtotal().Equal(decimal.RequireFromString("17.98")))
}
