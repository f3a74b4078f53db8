package linkq

import (
	"deedles.dev/linkq/internal/logging"
	"go.uber.org/zap"
)

// An Option configures a Queue at construction.
type Option func(*options)

type options struct {
	log *zap.Logger
}

func defaultOptions() options {
	return options{log: zap.NewNop()}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that operations on an empty queue are
// reported to. A nil logger disables reporting, which is also the
// default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = logging.OrNop(l)
	}
}

// WithDefaultLogger reports to a logger writing to stderr, configured
// for development or production based on the GO_ENVIRONMENT
// environment variable. If that logger can't be built, reporting is
// disabled.
func WithDefaultLogger() Option {
	return func(o *options) {
		l, err := logging.Default()
		if err != nil {
			return
		}
		o.log = l
	}
}
