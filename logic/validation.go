package logic

// Validate checks that items satisfy the cart invariants: every id is non-empty and
// unique, every quantity is between one and MaxLineQuantity and no price is negative.
func Validate(items []CartItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.ID == "" {
			return NewInvalidArgument(ErrMsgProductIDRequired)
		}
		if _, dup := seen[item.ID]; dup {
			return NewInvalidArgumentf("%s: %s", ErrMsgDuplicateItem, item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.Quantity <= 0 {
			return NewInvalidArgumentf("%s: %s", ErrMsgQuantityPositive, item.ID)
		}
		if item.Quantity > MaxLineQuantity {
			return NewInvalidArgumentf("%s: %s", ErrMsgQuantityTooLarge, item.ID)
		}
		if item.Price.IsNegative() {
			return NewInvalidArgumentf("%s: %s", ErrMsgPriceNegative, item.ID)
		}
	}
	return nil
}
