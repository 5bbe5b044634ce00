package utils

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

// Recovery turns a panic raised anywhere below it into an ErrPanic. The
// panic is logged together with the path of the message being processed,
// the transaction itself fails like any other rejected one.
type Recovery struct{}

var _ gate.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (r Recovery) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Checker) (res *gate.CheckResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, panicked(ctx, tx, "check", p)
		}
	}()
	return next.Check(ctx, store, tx)
}

func (r Recovery) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Deliverer) (res *gate.DeliverResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, panicked(ctx, tx, "deliver", p)
		}
	}()
	return next.Deliver(ctx, store, tx)
}

func panicked(ctx gate.Context, tx gate.Tx, phase string, p interface{}) error {
	err := errors.Wrapf(errors.ErrPanic, "%v", p)
	gate.GetLogger(ctx).Error("recovered from panic",
		"phase", phase,
		"path", gate.GetPath(tx),
		"panic", p)
	return err
}
