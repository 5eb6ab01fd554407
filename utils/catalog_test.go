package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []CatalogItem
	}{
		{"empty", "", []CatalogItem{}},
		{"blank", "   ", []CatalogItem{}},
		{
			"name and price",
			"Kopi Susu:15000,Roti Bakar:12000",
			[]CatalogItem{{Name: "Kopi Susu", Price: str("15000")}, {Name: "Roti Bakar", Price: str("12000")}},
		},
		{
			"trims and skips empty names",
			" Teh : 5000 ,, :3000,Es Jeruk",
			[]CatalogItem{{Name: "Teh", Price: str("5000")}, {Name: "Es Jeruk"}},
		},
		{
			"empty price is no price",
			"Bakso:",
			[]CatalogItem{{Name: "Bakso"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCatalog(tt.raw))
		})
	}
}

func TestEncodeCatalog(t *testing.T) {
	items := []CatalogItem{
		{Name: "Kopi", Price: str("15000")},
		{Name: "  "},
		{Name: "Roti"},
	}

	raw, err := EncodeCatalog(items)
	require.NoError(t, err)
	assert.Equal(t, "Kopi:15000,Roti:", raw)

	back := ParseCatalog(raw)
	assert.Equal(t, []CatalogItem{{Name: "Kopi", Price: str("15000")}, {Name: "Roti"}}, back)
}

func TestEncodeCatalogRejectsDelimiters(t *testing.T) {
	_, err := EncodeCatalog([]CatalogItem{{Name: "Nasi, Ayam", Price: str("20000")}})
	assert.ErrorIs(t, err, ErrCatalogDelimiter)

	_, err = EncodeCatalog([]CatalogItem{{Name: "Nasi", Price: str("20:000")}})
	assert.ErrorIs(t, err, ErrCatalogDelimiter)
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, 15000, CatalogItem{Price: str("Rp 15.000")}.PriceValue())
	assert.Equal(t, 0, CatalogItem{Price: str("gratis")}.PriceValue())
	assert.Equal(t, 0, CatalogItem{}.PriceValue())

	assert.Equal(t, "Rp15000", CatalogItem{Price: str("15000")}.PriceLabel())
	assert.Equal(t, "-", CatalogItem{}.PriceLabel())
}

func TestCatalogPrices(t *testing.T) {
	prices := CatalogPrices(ParseCatalog("Kopi:15000,Teh,Roti:Rp 8.000"))
	assert.Equal(t, map[string]int{"Kopi": 15000, "Teh": 0, "Roti": 8000}, prices)
}
