package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAddRemove(t *testing.T) {
	cart := Cart{}
	cart.Add("Kopi")
	cart.Add("Kopi")
	cart.Add("Roti")
	assert.Equal(t, 3, cart.Count())

	cart.Remove("Kopi")
	assert.Equal(t, 1, cart["Kopi"])

	cart.Remove("Kopi")
	_, ok := cart["Kopi"]
	assert.False(t, ok, "quantity one must drop the entry")
	assert.Equal(t, 1, cart.Count())
}

func TestCartRemoveUnknownIsNoop(t *testing.T) {
	cart := Cart{"Teh": 2}
	cart.Remove("Kopi")
	assert.Equal(t, Cart{"Teh": 2}, cart)
}

func TestProfileDisplayName(t *testing.T) {
	assert.Equal(t, "sri", (&Profile{Username: "sri", FullName: "Sri"}).DisplayName())
	assert.Equal(t, "Sri Wahyuni", (&Profile{FullName: "Sri Wahyuni"}).DisplayName())
	assert.Equal(t, "sri.w", (&Profile{Email: "sri.w@example.com"}).DisplayName())
	assert.Equal(t, "Pelanggan", (&Profile{}).DisplayName())
}
