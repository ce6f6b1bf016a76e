package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one cart line. Price is the unit price taken from the menu
// catalog when the line is added; the quantity is always >= 1 (a zero
// quantity removes the line instead).
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Cart holds the line items of one session together with the derived
// totals. ItemCount and Total are recomputed on every mutation so they
// can never disagree with the lines.
type Cart struct {
	Items     []Item          `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

func New() *Cart {
	return &Cart{
		Items: []Item{},
		Total: decimal.Zero,
	}
}

// AddItem inserts the item with quantity 1, or increments the quantity
// of an existing line with the same id.
func (c *Cart) AddItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity++
			c.recompute()
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
	c.recompute()
}

// UpdateQuantity sets the exact quantity of a line. A quantity of zero
// or less removes the line.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.recompute()
}

// RemoveItem deletes the line with the given id, if present.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	c.recompute()
}

// Clear empties the cart. Invoked after a confirmed payment.
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.recompute()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) recompute() {
	count := 0
	total := decimal.Zero
	for _, it := range c.Items {
		count += it.Quantity
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	c.ItemCount = count
	c.Total = total.Round(2)
}
