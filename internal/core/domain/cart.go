package domain

import "fmt"

// A StockPolicy decides how a [Cart] treats quantities above the
// latest product stock the cart has seen.
type StockPolicy string

const (
	// StockPolicyClamp never lets a line exceed the known stock.
	StockPolicyClamp StockPolicy = "clamp"
	// StockPolicyOversell only refuses products with zero stock.
	StockPolicyOversell StockPolicy = "oversell"
)

// ParseStockPolicy maps an empty string to [StockPolicyClamp].
func ParseStockPolicy(s string) (StockPolicy, error) {
	switch p := StockPolicy(s); p {
	case StockPolicyClamp, StockPolicyOversell:
		return p, nil
	case "":
		return StockPolicyClamp, nil
	default:
		return "", fmt.Errorf("unknown stock policy %q", s)
	}
}

// A CartItem is one cart line. Product is a snapshot taken on add.
type CartItem struct {
	Product  Product
	Quantity int
}

// LineTotal is the snapshot price times the quantity.
func (it CartItem) LineTotal() float64 {
	return it.Product.Price * float64(it.Quantity)
}

// A Cart is the set of products selected during one checkout session.
//
// Items keep insertion order and there is at most one item per product id.
// A stored quantity is always positive.
type Cart struct {
	policy StockPolicy
	items  []CartItem
}

// NewCart returns an empty cart. An empty policy means clamp.
func NewCart(policy StockPolicy) *Cart {
	if policy == "" {
		policy = StockPolicyClamp
	}
	return &Cart{policy: policy}
}

func (c *Cart) Policy() StockPolicy {
	return c.policy
}

// Add puts one unit of p into the cart, incrementing an existing line.
func (c *Cart) Add(p Product) error {
	if p.Stock <= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, p.ID)
	}

	i := c.indexOf(p.ID)
	if i < 0 {
		c.items = append(c.items, CartItem{Product: p, Quantity: 1})
		return nil
	}

	c.items[i].Product.Stock = p.Stock
	if c.policy == StockPolicyClamp && c.items[i].Quantity >= p.Stock {
		return fmt.Errorf(
			"%w: %s has %d in stock", ErrInsufficientStock, p.ID, p.Stock,
		)
	}
	c.items[i].Quantity++
	return nil
}

// Restock records the current catalog stock for the product line.
// Prices keep their snapshot values. Absent lines are ignored.
func (c *Cart) Restock(productID string, stock int) {
	if i := c.indexOf(productID); i >= 0 {
		c.items[i].Product.Stock = stock
	}
}

// SetQuantity stores quantity for the product line and returns the
// quantity actually kept. Non-positive quantity removes the line.
// Under [StockPolicyClamp] the quantity is capped at the known stock.
func (c *Cart) SetQuantity(productID string, quantity int) int {
	i := c.indexOf(productID)
	if i < 0 {
		return 0
	}

	if c.policy == StockPolicyClamp {
		quantity = min(quantity, c.items[i].Product.Stock)
	}

	if quantity <= 0 {
		c.removeAt(i)
		return 0
	}

	c.items[i].Quantity = quantity
	return quantity
}

// Remove drops the product line if present.
func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal is the sum of the line totals.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.LineTotal()
	}
	return sum
}

// ItemCount is the total number of units.
func (c *Cart) ItemCount() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Lines returns the sale lines for the current items, prices taken
// from the product snapshots.
func (c *Cart) Lines() []SaleLine {
	lines := make([]SaleLine, len(c.items))
	for i, it := range c.items {
		lines[i] = SaleLine{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Product.Price,
		}
	}
	return lines
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.items = append(c.items[:i], c.items[i+1:]...)
}
