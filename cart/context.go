package cart

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying c.
func NewContext(ctx context.Context, c *Cart) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the cart attached by NewContext. It panics with ErrNotInitialized
// when there is none.
func FromContext(ctx context.Context) *Cart {
	c, ok := Lookup(ctx)
	if !ok {
		panic(ErrNotInitialized)
	}
	return c
}

func Lookup(ctx context.Context) (*Cart, bool) {
	c, ok := ctx.Value(contextKey{}).(*Cart)
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}
