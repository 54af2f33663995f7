package logic

// LoadCart replaces the items wholesale. It is only dispatched during hydration, with
// items that already passed Validate.
type LoadCart struct {
	Items []CartItem
}

func (a LoadCart) apply(CartState) CartState {
	items := make([]CartItem, len(a.Items))
	copy(items, a.Items)
	return CartState{Items: items}
}
