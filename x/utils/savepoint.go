package utils

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

// Savepoint runs the wrapped handler against a cache of the store. The
// cache is written back only when the handler succeeds, so a failed
// transfer leaves no partial writes behind.
//
// A zero Savepoint is inactive. Enable it per phase with OnCheck and
// OnDeliver.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ gate.Decorator = Savepoint{}

// NewSavepoint returns an inactive Savepoint.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck activates the savepoint for CheckTx.
func (s Savepoint) OnCheck() Savepoint {
	s.onCheck = true
	return s
}

// OnDeliver activates the savepoint for DeliverTx.
func (s Savepoint) OnDeliver() Savepoint {
	s.onDeliver = true
	return s
}

func (s Savepoint) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Checker) (*gate.CheckResult, error) {
	var res *gate.CheckResult
	err := isolate(s.onCheck, store, func(db gate.KVStore) error {
		var err error
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Deliverer) (*gate.DeliverResult, error) {
	var res *gate.DeliverResult
	err := isolate(s.onDeliver, store, func(db gate.KVStore) error {
		var err error
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn with a cache of store when active is set and the store
// can be cached. Otherwise fn runs directly on store.
func isolate(active bool, store gate.KVStore, fn func(gate.KVStore) error) error {
	cacheable, ok := store.(gate.CacheableKVStore)
	if !active || !ok {
		return fn(store)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write savepoint")
	}
	return nil
}
