package logic

type UpdateQuantity struct {
	ID       string
	Quantity int
}

// apply replaces the quantity of an existing line. A quantity of zero or less removes
// the line, a quantity above MaxLineQuantity is capped, and an unknown id changes nothing.
func (a UpdateQuantity) apply(state CartState) CartState {
	if a.Quantity <= 0 {
		return RemoveItem{ID: a.ID}.apply(state)
	}
	if i := state.Find(a.ID); i >= 0 {
		state.Items[i].Quantity = min(a.Quantity, MaxLineQuantity)
	}
	return state
}
