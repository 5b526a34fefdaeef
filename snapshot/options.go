package snapshot

import "github.com/datatrails/go-datatrails-common/logger"

type StoreOptions struct {
	prefix string
	log    logger.Logger
}

type StoreOption func(*StoreOptions)

// WithPrefix replaces V1SnapshotPrefix as the root of snapshot paths.
func WithPrefix(prefix string) StoreOption {
	return func(o *StoreOptions) {
		o.prefix = prefix
	}
}

func WithLogger(log logger.Logger) StoreOption {
	return func(o *StoreOptions) {
		o.log = log
	}
}

func newStoreOptions(opts []StoreOption) StoreOptions {
	o := StoreOptions{prefix: V1SnapshotPrefix}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
