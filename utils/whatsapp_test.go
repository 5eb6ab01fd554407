package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrder(t *testing.T) {
	summary := BuildOrder("Warung Bu Sri",
		map[string]int{"Teh Manis": 2, "Nasi Goreng": 1, "Kerupuk": 0},
		map[string]int{"Teh Manis": 5000, "Nasi Goreng": 18000},
	)

	want := "Halo Warung Bu Sri,\nsaya ingin memesan via Lokal.in:\n\n" +
		"- Nasi Goreng (1x)\n- Teh Manis (2x)\n" +
		"\nTotal Estimasi: Rp28.000\n\nMohon diproses ya, terima kasih!"

	assert.Equal(t, want, summary.Message)
	assert.Equal(t, 28000, summary.Total)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Len(t, summary.Lines, 2)
	assert.Equal(t, OrderLine{Name: "Teh Manis", Quantity: 2, Price: 5000, Subtotal: 10000}, summary.Lines[1])
}

func TestBuildOrderUnknownPriceCountsZero(t *testing.T) {
	summary := BuildOrder("Toko", map[string]int{"Misteri": 3}, map[string]int{})
	assert.Equal(t, 0, summary.Total)
	assert.Contains(t, summary.Message, "Total Estimasi: Rp0")
}

func TestBuildOrderEmptyCart(t *testing.T) {
	summary := BuildOrder("Toko Kita", nil, nil)
	assert.Equal(t, "Halo Toko Kita, saya menemukan UMKM Anda di Lokal.in...", summary.Message)
	assert.Empty(t, summary.Lines)
	assert.Zero(t, summary.Total)
}

func TestBuildOrderTotalSaturates(t *testing.T) {
	summary := BuildOrder("Toko Emas",
		map[string]int{"Emas Batangan": 2, "Kerupuk": 1},
		map[string]int{"Emas Batangan": 9000000000000000000, "Kerupuk": 1000},
	)

	assert.Equal(t, math.MaxInt, summary.Lines[0].Subtotal)
	assert.Equal(t, math.MaxInt, summary.Total)
	assert.Equal(t, 3, summary.ItemCount)
	assert.NotContains(t, summary.Message, "Rp-")
}

func TestFormatRupiah(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1.000",
		15000:   "15.000",
		1234567: "1.234.567",
		-2500:   "-2.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatRupiah(in))
	}
}

func TestWhatsAppURL(t *testing.T) {
	url := WhatsAppURL("+62 812-3456-789", "Halo Toko,\nsaya & kamu")
	assert.Equal(t, "https://wa.me/628123456789?text=Halo%20Toko%2C%0Asaya%20%26%20kamu", url)
}

func TestShareMessage(t *testing.T) {
	assert.Equal(t, "Cek UMKM Kopi Kita di Lokal.in!\n📍 Jl. Merdeka 1", ShareMessage("Kopi Kita", "Jl. Merdeka 1"))
	assert.Equal(t,
		"https://www.google.com/maps/search/?api=1&query=Kopi%20Kita%2C%20Jl.%20Merdeka",
		MapsSearchURL("Kopi Kita", "Jl. Merdeka"))
}

func TestSplitImages(t *testing.T) {
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, SplitImages(" a.jpg || b.jpg |"))
	assert.Equal(t, []string{}, SplitImages(""))
	assert.Equal(t, "a.jpg|b.jpg", JoinImages([]string{"a.jpg", " ", "b.jpg "}))
}
