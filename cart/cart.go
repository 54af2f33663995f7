// Package cart exposes the shopping cart to the rest of the storefront. A Cart is created
// once per session with New, which hydrates it from storage, and from then on every
// change is visible immediately through State and mirrored to storage in the background.
package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/logic"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/storage"
)

// ErrNotInitialized is the panic value when a Cart that did not come from New is used.
var ErrNotInitialized = errors.New("cart: used before initialization, create it with cart.New")

type Cart struct {
	ready     bool
	logger    *zap.Logger
	persister *Persister

	notifyMu sync.Mutex

	mu      sync.Mutex
	state   logic.CartState
	subs    map[int]func(logic.CartState)
	nextSub int
}

// New hydrates a cart from store and starts mirroring changes back into it. Stored data
// that cannot be read is logged and replaced by an empty cart.
func New(ctx context.Context, store storage.Store, opts ...Option) (*Cart, error) {
	if store == nil {
		return nil, errors.New("cart: nil store")
	}
	o := options{logger: zap.NewNop(), key: DefaultKey}
	for _, opt := range opts {
		opt(&o)
	}

	state := logic.EmptyState()
	if items := Hydrate(ctx, store, o.key, o.logger); len(items) > 0 {
		state = logic.Reduce(state, logic.LoadCart{Items: items})
	}
	o.logger.Info("cart ready",
		zap.String("key", o.key),
		zap.Int("items", len(state.Items)),
		zap.Int("item_count", state.ItemCount))

	return &Cart{
		ready:     true,
		logger:    o.logger,
		persister: NewPersister(store, o.key, o.logger, o.writeTimeout),
		state:     state,
		subs:      make(map[int]func(logic.CartState)),
	}, nil
}

func (c *Cart) mustBeReady() {
	if c == nil || !c.ready {
		panic(ErrNotInitialized)
	}
}

// State returns a copy of the current cart; changing it has no effect on the cart.
func (c *Cart) State() logic.CartState {
	c.mustBeReady()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// AddToCart adds one unit of product.
func (c *Cart) AddToCart(product logic.Product) error {
	return c.AddToCartQuantity(product, 1)
}

// AddToCartQuantity adds quantity units of product, incrementing an existing line.
// A non-positive quantity, or one that would take the line past logic.MaxLineQuantity,
// is rejected with an INVALID_ARGUMENT CommandError.
func (c *Cart) AddToCartQuantity(product logic.Product, quantity int) error {
	c.mustBeReady()
	c.logger.Debug("adding item", zap.String("product_id", product.ID), zap.Int("quantity", quantity))
	err := c.dispatch(logic.AddItem{Product: product, Quantity: quantity}, func(state logic.CartState) error {
		return logic.ValidateAddTo(state, product, quantity)
	})
	if err != nil {
		c.logger.Debug("add rejected", zap.String("product_id", product.ID), zap.Int("quantity", quantity), zap.Error(err))
	}
	return err
}

func (c *Cart) RemoveFromCart(id string) {
	c.mustBeReady()
	c.logger.Debug("removing item", zap.String("product_id", id))
	c.dispatch(logic.RemoveItem{ID: id}, nil)
}

// UpdateQuantity sets the quantity of an existing line; zero or less removes it.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mustBeReady()
	c.logger.Debug("updating quantity", zap.String("product_id", id), zap.Int("new_quantity", quantity))
	c.dispatch(logic.UpdateQuantity{ID: id, Quantity: quantity}, nil)
}

func (c *Cart) ClearCart() {
	c.mustBeReady()
	c.logger.Debug("clearing cart")
	c.dispatch(logic.ClearCart{}, nil)
}

// Subscribe registers fn to receive a snapshot after every change. Snapshots arrive in
// the order the changes were made, one change at a time. fn may read State or cancel its
// subscription but must not change the cart. The returned func unregisters it.
func (c *Cart) Subscribe(fn func(logic.CartState)) (cancel func()) {
	c.mustBeReady()
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Flush waits for the background writer to catch up with every change made so far.
func (c *Cart) Flush(ctx context.Context) error {
	c.mustBeReady()
	return c.persister.Flush(ctx)
}

// Close writes any pending change and stops the background writer. The in-memory cart
// stays usable but further changes are no longer saved.
func (c *Cart) Close() {
	c.mustBeReady()
	c.persister.Close()
}

// dispatch applies action if check (when non-nil) accepts the current state. notifyMu is
// held until every subscriber has seen the change, so notifications keep change order.
func (c *Cart) dispatch(action logic.Action, check func(logic.CartState) error) error {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if check != nil {
		if err := check(c.state); err != nil {
			c.mu.Unlock()
			return err
		}
	}
	c.state = logic.Reduce(c.state, action)
	c.persister.Save(c.state.Items)

	subs := make([]func(logic.CartState), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	snapshot := c.state
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot.Clone())
	}
	return nil
}
