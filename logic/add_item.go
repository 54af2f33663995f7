package logic

// MaxLineQuantity caps the quantity of a single line.
const MaxLineQuantity = 1_000_000

type AddItem struct {
	Product  Product
	Quantity int
}

// apply increments an existing line or appends a new one. Metadata of an existing line
// is kept as first written. An add that would push a line past MaxLineQuantity changes
// nothing.
func (a AddItem) apply(state CartState) CartState {
	if a.Quantity <= 0 || a.Quantity > MaxLineQuantity {
		return state
	}
	if i := state.Find(a.Product.ID); i >= 0 {
		if state.Items[i].Quantity > MaxLineQuantity-a.Quantity {
			return state
		}
		state.Items[i].Quantity += a.Quantity
		return state
	}
	state.Items = append(state.Items, CartItem{Product: a.Product, Quantity: a.Quantity})
	return state
}

// ValidateAdd rejects an add command that would break the cart invariants.
func ValidateAdd(product Product, quantity int) error {
	if product.ID == "" {
		return NewInvalidArgument(ErrMsgProductIDRequired)
	}
	if quantity <= 0 {
		return NewInvalidArgument(ErrMsgQuantityPositive)
	}
	if quantity > MaxLineQuantity {
		return NewInvalidArgument(ErrMsgQuantityTooLarge)
	}
	if product.Price.IsNegative() {
		return NewInvalidArgument(ErrMsgPriceNegative)
	}
	return nil
}

// ValidateAddTo is ValidateAdd plus the check that the resulting line in state stays
// within MaxLineQuantity.
func ValidateAddTo(state CartState, product Product, quantity int) error {
	if err := ValidateAdd(product, quantity); err != nil {
		return err
	}
	if i := state.Find(product.ID); i >= 0 && state.Items[i].Quantity > MaxLineQuantity-quantity {
		return NewInvalidArgument(ErrMsgQuantityTooLarge)
	}
	return nil
}
