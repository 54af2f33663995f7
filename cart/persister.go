package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/logic"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/storage"
)

const DefaultWriteTimeout = 5 * time.Second

// Persister mirrors cart items into a storage slot from a single background goroutine.
// Save never blocks on I/O; only the newest snapshot is written, and write failures are
// logged and dropped.
type Persister struct {
	store   storage.Store
	key     string
	logger  *zap.Logger
	timeout time.Duration

	mu         sync.Mutex
	pending    []logic.CartItem
	hasPending bool
	saved      uint64
	written    uint64
	progress   chan struct{}
	closed     bool

	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
}

func NewPersister(store storage.Store, key string, logger *zap.Logger, timeout time.Duration) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	p := &Persister{
		store:    store,
		key:      key,
		logger:   logger,
		timeout:  timeout,
		progress: make(chan struct{}),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go p.run()
	return p
}

// Save schedules items to be written. Earlier unwritten snapshots are superseded.
func (p *Persister) Save(items []logic.CartItem) {
	snapshot := make([]logic.CartItem, len(items))
	copy(snapshot, items)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("cart persister closed, change not saved", zap.String("key", p.key))
		return
	}
	p.pending = snapshot
	p.hasPending = true
	p.saved++
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Flush waits until every snapshot saved before the call has been written or dropped.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	target := p.saved
	p.mu.Unlock()

	for {
		p.mu.Lock()
		if p.written >= target {
			p.mu.Unlock()
			return nil
		}
		progress := p.progress
		p.mu.Unlock()

		select {
		case <-progress:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close writes any pending snapshot and stops the writer. It is safe to call twice.
func (p *Persister) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.stopped
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.done)
	<-p.stopped
}

func (p *Persister) run() {
	defer close(p.stopped)
	for {
		select {
		case <-p.wake:
			p.writePending()
		case <-p.done:
			p.writePending()
			return
		}
	}
}

func (p *Persister) writePending() {
	p.mu.Lock()
	if !p.hasPending {
		p.mu.Unlock()
		return
	}
	items, gen := p.pending, p.saved
	p.pending, p.hasPending = nil, false
	p.mu.Unlock()

	p.write(items)

	p.mu.Lock()
	p.written = gen
	close(p.progress)
	p.progress = make(chan struct{})
	p.mu.Unlock()
}

func (p *Persister) write(items []logic.CartItem) {
	data, err := Encode(items)
	if err != nil {
		p.logger.Error("failed to encode cart", zap.String("key", p.key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.store.Set(ctx, p.key, data); err != nil {
		p.logger.Error("failed to save cart", zap.String("key", p.key), zap.Error(err))
		return
	}
	p.logger.Debug("cart saved", zap.String("key", p.key), zap.Int("items", len(items)))
}

// Hydrate reads the slot once. A missing key yields an empty cart silently; unreadable
// or malformed data is logged and also yields an empty cart.
func Hydrate(ctx context.Context, store storage.Store, key string, logger *zap.Logger) []logic.CartItem {
	data, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.Warn("failed to load cart", zap.String("key", key), zap.Error(err))
		return nil
	}

	items, err := Decode(data)
	if err != nil {
		logger.Warn("discarding stored cart", zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}
