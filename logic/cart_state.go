package logic

import "github.com/shopspring/decimal"

// Product is the catalog data a caller supplies when adding to the cart.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	ImageURL string
}

type CartItem struct {
	Product
	Quantity int
}

// Subtotal is Price x Quantity for a single line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartState is the whole cart. Total and ItemCount are derived from Items and are
// refreshed by Recompute after every transition.
type CartState struct {
	Items     []CartItem
	Total     decimal.Decimal
	ItemCount int
}

func EmptyState() CartState {
	return CartState{
		Items: []CartItem{},
		Total: decimal.Zero,
	}
}

func (s CartState) IsEmpty() bool {
	return len(s.Items) == 0
}

// Find returns the index of the item with the given id, or -1.
func (s CartState) Find(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CartState) Recompute() {
	total := decimal.Zero
	count := 0
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
		count += item.Quantity
	}
	s.Total = total
	s.ItemCount = count
}

// Clone returns a copy that shares no backing array with s.
func (s CartState) Clone() CartState {
	items := make([]CartItem, len(s.Items))
	copy(items, s.Items)
	return CartState{Items: items, Total: s.Total, ItemCount: s.ItemCount}
}
