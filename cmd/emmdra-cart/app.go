package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/cart"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/checkout"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/config"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/storage"
)

type app struct {
	configPath string
	noColor    bool
	out        io.Writer
}

// session is everything one CLI invocation needs; close releases it in reverse order.
type session struct {
	cfg       config.Config
	logger    *zap.Logger
	cart      *cart.Cart
	submitter checkout.Submitter
	closers   []func()
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func (a *app) open(ctx context.Context) (*session, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger}
	s.closers = append(s.closers, func() { _ = logger.Sync() })

	store, err := openStore(cfg.Storage)
	if err != nil {
		s.close()
		return nil, err
	}
	if closer, ok := store.(io.Closer); ok {
		s.closers = append(s.closers, func() { closer.Close() })
	}

	s.submitter = checkout.LogSubmitter{Logger: logger}
	if cfg.Orders.Path != "" {
		db, err := storage.OpenSQLite(cfg.Orders.Path)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("failed to open order store: %w", err)
		}
		s.closers = append(s.closers, func() { db.Close() })
		orders, err := checkout.NewSQLiteOrders(db.DB())
		if err != nil {
			s.close()
			return nil, err
		}
		s.submitter = orders
	}

	c, err := cart.New(ctx, store, cart.WithLogger(logger), cart.WithKey(cfg.Storage.Key))
	if err != nil {
		s.close()
		return nil, err
	}
	s.cart = c
	s.closers = append(s.closers, c.Close)
	return s, nil
}

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendFile:
		return storage.NewFileStore(cfg.Path)
	case config.BackendSQLite:
		return storage.OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// run opens a session, puts its cart into the context and hands it to fn. Pending writes
// are flushed when fn returns.
func (a *app) run(ctx context.Context, fn func(ctx context.Context, s *session) error) error {
	s, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer s.close()
	return fn(cart.NewContext(ctx, s.cart), s)
}
