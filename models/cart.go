package models

// Cart maps a catalog item name to the selected quantity. Every stored
// quantity is at least one.
type Cart map[string]int

func (c Cart) Add(name string) {
	c[name]++
}

// Remove decrements the quantity and drops the entry once it reaches zero.
func (c Cart) Remove(name string) {
	qty, ok := c[name]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c, name)
		return
	}
	c[name] = qty - 1
}

// Count is the total number of units, not distinct items.
func (c Cart) Count() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

type CartResponse struct {
	BusinessID string `json:"business_id"`
	Items      Cart   `json:"items"`
	ItemCount  int    `json:"item_count"`
}
