package cart

import (
	"time"

	"go.uber.org/zap"
)

// DefaultKey is the storage slot the cart is mirrored into.
const DefaultKey = "emmdra-cart"

type options struct {
	logger       *zap.Logger
	key          string
	writeTimeout time.Duration
}

type Option func(*options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) {
		o.writeTimeout = d
	}
}
