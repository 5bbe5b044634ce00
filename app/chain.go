package app

import (
	"reflect"

	"github.com/iov-one/gate"
)

// Decorators is an ordered list of decorators waiting for the handler
// they will wrap. The first decorator runs first.
type Decorators struct {
	chain []gate.Decorator
}

/*
ChainDecorators starts a chain. Adding the final handler with WithHandler
returns a single Handler running the whole stack, e.g.

  app.ChainDecorators(
    utils.NewLogging(),
    utils.NewRecovery(),
    sigs.NewDecorator(),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(router)

Nil decorators are skipped, so optional steps can be passed unconditionally.
*/
func ChainDecorators(chain ...gate.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a new chain with given decorators appended. The receiver
// is not modified.
func (d Decorators) Chain(chain ...gate.Decorator) Decorators {
	next := make([]gate.Decorator, 0, len(d.chain)+len(chain))
	next = append(next, d.chain...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			next = append(next, dec)
		}
	}
	return Decorators{chain: next}
}

func isNilDecorator(d gate.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the chain into a single Handler.
func (d Decorators) WithHandler(h gate.Handler) gate.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step runs one decorator around the rest of the stack.
type step struct {
	d    gate.Decorator
	next gate.Handler
}

var _ gate.Handler = step{}

func (s step) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	return s.d.Check(ctx, store, tx, s.next)
}

func (s step) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
