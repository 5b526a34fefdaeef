package stab

import "github.com/datatrails/go-datatrails-common/logger"

// Options configures an Index. Options only affect diagnostics and
// allocation, never answers.
type Options struct {
	log          logger.Logger
	capacityHint int
}

type Option func(*Options)

// WithLogger enables debug logging of build statistics.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithRecordCapacityHint preallocates the record arena. Zero selects a size
// derived from the rectangle count.
func WithRecordCapacityHint(records int) Option {
	return func(o *Options) {
		o.capacityHint = records
	}
}
