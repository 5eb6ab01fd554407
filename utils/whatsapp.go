package utils

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxOrderQuantity caps a single order line.
const MaxOrderQuantity = 999

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// OrderLine is one rendered row of a WhatsApp order.
type OrderLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
	Subtotal int    `json:"subtotal"`
}

type OrderSummary struct {
	Lines     []OrderLine `json:"lines"`
	ItemCount int         `json:"item_count"`
	Total     int         `json:"total"`
	Message   string      `json:"message"`
}

// BuildOrder renders a cart into the message a buyer sends to the seller.
// Lines are ordered by item name; items missing from prices count as zero.
// Subtotals and the total saturate at math.MaxInt instead of wrapping.
// An empty cart produces the plain greeting used for a normal chat.
func BuildOrder(businessName string, quantities map[string]int, prices map[string]int) OrderSummary {
	summary := OrderSummary{Lines: []OrderLine{}}

	names := make([]string, 0, len(quantities))
	for name, qty := range quantities {
		if qty > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	if len(names) == 0 {
		summary.Message = fmt.Sprintf("Halo %s, saya menemukan UMKM Anda di Lokal.in...", businessName)
		return summary
	}

	var list strings.Builder
	for _, name := range names {
		qty := quantities[name]
		price := prices[name]
		line := OrderLine{Name: name, Quantity: qty, Price: price, Subtotal: saturatingMul(price, qty)}

		summary.Lines = append(summary.Lines, line)
		summary.ItemCount = saturatingAdd(summary.ItemCount, qty)
		summary.Total = saturatingAdd(summary.Total, line.Subtotal)
		fmt.Fprintf(&list, "- %s (%dx)\n", name, qty)
	}

	summary.Message = fmt.Sprintf(
		"Halo %s,\nsaya ingin memesan via Lokal.in:\n\n%s\nTotal Estimasi: Rp%s\n\nMohon diproses ya, terima kasih!",
		businessName, list.String(), FormatRupiah(summary.Total),
	)
	return summary
}

// CleanPhone strips everything but digits from a WhatsApp number.
func CleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// WhatsAppURL builds the wa.me deep link with a prefilled message.
func WhatsAppURL(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", CleanPhone(phone), EncodeURIComponent(message))
}

func MapsSearchURL(name, address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + EncodeURIComponent(name+", "+address)
}

func ShareMessage(name, address string) string {
	return fmt.Sprintf("Cek UMKM %s di Lokal.in!\n📍 %s", name, address)
}

// EncodeURIComponent escapes spaces as %20 rather than '+'.
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FormatRupiah groups thousands with dots, as id-ID locale does.
func FormatRupiah(amount int) string {
	return rupiahPrinter.Sprintf("%d", amount)
}

// saturatingMul expects qty > 0.
func saturatingMul(price, qty int) int {
	if price > 0 && price > math.MaxInt/qty {
		return math.MaxInt
	}
	if price < 0 && price < math.MinInt/qty {
		return math.MinInt
	}
	return price * qty
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}
