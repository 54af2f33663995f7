package logic

type ClearCart struct{}

func (ClearCart) apply(CartState) CartState {
	return EmptyState()
}
