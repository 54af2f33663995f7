package logic

// Action is one of AddItem, RemoveItem, UpdateQuantity, ClearCart or LoadCart.
type Action interface {
	apply(state CartState) CartState
}

// Reduce applies action to state and returns the next state. It is pure: the input
// state is never modified, and derived fields of the result are always recomputed.
func Reduce(state CartState, action Action) CartState {
	if action == nil {
		return state
	}
	next := action.apply(state.Clone())
	next.Recompute()
	return next
}

// ReduceAll folds actions over state in order.
func ReduceAll(state CartState, actions ...Action) CartState {
	for _, action := range actions {
		state = Reduce(state, action)
	}
	return state
}
