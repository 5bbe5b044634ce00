package utils

import (
	"github.com/iov-one/gate"
)

// writeHandler writes the key, value pair and returns the error (may be nil)
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ gate.Handler = writeHandler{}

func (h writeHandler) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &gate.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &gate.DeliverResult{}, nil
}

// writeDecorator writes the key, value pair.
// either before or after calling the handlers
type writeDecorator struct {
	key   []byte
	value []byte
	after bool
}

var _ gate.Decorator = writeDecorator{}

func (d writeDecorator) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Checker) (*gate.CheckResult, error) {
	if !d.after {
		store.Set(d.key, d.value)
	}
	res, err := next.Check(ctx, store, tx)
	if d.after && err == nil {
		store.Set(d.key, d.value)
	}
	return res, err
}

func (d writeDecorator) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Deliverer) (*gate.DeliverResult, error) {
	if !d.after {
		store.Set(d.key, d.value)
	}
	res, err := next.Deliver(ctx, store, tx)
	if d.after && err == nil {
		store.Set(d.key, d.value)
	}
	return res, err
}

// deleteHandler removes the key and succeeds
type deleteHandler struct {
	key []byte
}

var _ gate.Handler = deleteHandler{}

func (h deleteHandler) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	return &gate.CheckResult{}, store.Delete(h.key)
}

func (h deleteHandler) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	if err := store.Delete(h.key); err != nil {
		return nil, err
	}
	return &gate.DeliverResult{}, nil
}

// panicHandler always panics
type panicHandler struct {
	msg string
}

var _ gate.Handler = panicHandler{}

func (p panicHandler) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	panic(p.msg)
}

func (p panicHandler) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	panic(p.msg)
}
