package utils

import (
	"time"

	"github.com/iov-one/gate"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one log entry per processed transaction with its path
// and the time spent in the wrapped handler, in microseconds. Failures
// are logged at error level. A successful CheckTx is logged at debug
// level and a successful DeliverTx at info level.
type Logging struct{}

var _ gate.Decorator = Logging{}

// NewLogging returns a Logging decorator.
func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Checker) (*gate.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	entry := newLogEntry(ctx, tx, start)
	switch {
	case err != nil:
		entry.With("err", err).Error("")
	default:
		entry.Debug(res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Deliverer) (*gate.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	entry := newLogEntry(ctx, tx, start)
	switch {
	case err != nil:
		entry.With("err", err).Error("")
	default:
		entry.Info(res.Log)
	}
	return res, err
}

func newLogEntry(ctx gate.Context, tx gate.Tx, start time.Time) log.Logger {
	return gate.GetLogger(ctx).With(
		"path", gate.GetPath(tx),
		"duration", time.Since(start)/time.Microsecond,
	)
}
