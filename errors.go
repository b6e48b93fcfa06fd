package listheap

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const component = "listheap"

var (
	// ErrEmpty is the panic value (wrapped with a stack trace) of Top and Pop on an empty heap.
	ErrEmpty = errors.New("listheap: heap is empty")
	// ErrSelfMerge is the panic value of h.Merge(h).
	ErrSelfMerge = errors.New("listheap: heap merged into itself")
	// ErrNilLess is the panic value of NewFunc(nil).
	ErrNilLess = errors.New("listheap: less function is required")
)

// violation logs a broken precondition and panics. It runs before any state changes.
func violation(log *logrus.Entry, op string, cause error) {
	err := errors.WithStack(cause)
	if log == nil {
		log = discard
	}
	if log.Logger.IsLevelEnabled(logrus.ErrorLevel) {
		log.WithFields(logrus.Fields{
			"event": "contract_violation",
			"op":    op,
		}).WithError(err).Error("precondition failed")
	}
	panic(err)
}
