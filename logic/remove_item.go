package logic

type RemoveItem struct {
	ID string
}

func (a RemoveItem) apply(state CartState) CartState {
	i := state.Find(a.ID)
	if i < 0 {
		return state
	}
	state.Items = append(state.Items[:i], state.Items[i+1:]...)
	return state
}
