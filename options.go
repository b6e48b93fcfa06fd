package listheap

import (
	"io"

	"github.com/sirupsen/logrus"
)

// options defines all configuration options for a heap.
type options struct {
	logger logrus.FieldLogger // Receives merge/move events and contract violations
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithLogger sets the logger used for debug events and contract violations.
// Events are only emitted when the logger has the matching level enabled.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		logger: nil,
	}
}

// discard is shared by every heap built without WithLogger.
var discard = newDiscardEntry()

func newDiscardEntry() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l.WithField("component", component)
}

func (o options) entry() *logrus.Entry {
	if o.logger == nil {
		return discard
	}
	return o.logger.WithField("component", component)
}
