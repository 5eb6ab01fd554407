package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	catalogItemSeparator  = ","
	catalogPriceSeparator = ":"
)

var ErrCatalogDelimiter = errors.New("catalog item must not contain ',' or ':'")

// CatalogItem is one product of a business menu. Price keeps the text the
// seller typed; nil means no price was given.
type CatalogItem struct {
	Name  string  `json:"name"`
	Price *string `json:"price"`
}

// PriceLabel renders the price the way the detail page shows it.
func (i CatalogItem) PriceLabel() string {
	if i.Price == nil || *i.Price == "" {
		return "-"
	}
	return "Rp" + *i.Price
}

// PriceValue keeps only the digits of the price text, so "Rp 15.000"
// counts as 15000. Missing or digit-less prices count as zero.
func (i CatalogItem) PriceValue() int {
	if i.Price == nil {
		return 0
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, *i.Price)

	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return value
}

// ParseCatalog decodes "Kopi:15000,Teh:10000". Blank entries are skipped;
// an entry without ':' yields an item with no price.
func ParseCatalog(raw string) []CatalogItem {
	items := []CatalogItem{}
	if strings.TrimSpace(raw) == "" {
		return items
	}

	for _, entry := range strings.Split(raw, catalogItemSeparator) {
		parts := strings.Split(entry, catalogPriceSeparator)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}

		item := CatalogItem{Name: name}
		if len(parts) > 1 {
			price := strings.TrimSpace(parts[1])
			if price != "" {
				item.Price = &price
			}
		}
		items = append(items, item)
	}

	return items
}

// EncodeCatalog is the inverse of ParseCatalog. Items with an empty name are
// dropped. Names or prices containing a delimiter are rejected because the
// format has no escaping.
func EncodeCatalog(items []CatalogItem) (string, error) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}

		price := ""
		if item.Price != nil {
			price = strings.TrimSpace(*item.Price)
		}

		if strings.ContainsAny(name, catalogItemSeparator+catalogPriceSeparator) ||
			strings.ContainsAny(price, catalogItemSeparator+catalogPriceSeparator) {
			return "", fmt.Errorf("%w: %q", ErrCatalogDelimiter, name)
		}

		parts = append(parts, name+catalogPriceSeparator+price)
	}

	return strings.Join(parts, catalogItemSeparator), nil
}

// CatalogPrices maps item names to their numeric price. A later duplicate
// name overwrites an earlier one.
func CatalogPrices(items []CatalogItem) map[string]int {
	prices := make(map[string]int, len(items))
	for _, item := range items {
		prices[item.Name] = item.PriceValue()
	}
	return prices
}
