package gatetest

import "github.com/iov-one/gate"

// calls counts the invocations of a mock.
type calls struct {
	check, deliver int
}

// CallCount returns the number of Check and Deliver calls together.
func (c *calls) CallCount() int {
	return c.check + c.deliver
}

func (c *calls) CheckCallCount() int {
	return c.check
}

func (c *calls) DeliverCallCount() int {
	return c.deliver
}

// Handler returns the configured result or, when set, the configured
// error of each phase.
type Handler struct {
	calls

	CheckResult gate.CheckResult
	CheckErr    error

	DeliverResult gate.DeliverResult
	DeliverErr    error
}

var _ gate.Handler = (*Handler)(nil)

func (h *Handler) Check(gate.Context, gate.KVStore, gate.Tx) (*gate.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(gate.Context, gate.KVStore, gate.Tx) (*gate.DeliverResult, error) {
	h.deliver++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// Decorator passes every call to the next handler, unless the error of
// the phase is set. The error is then returned without calling next.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ gate.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx, next gate.Checker) (*gate.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx, next gate.Deliverer) (*gate.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler running h behind d.
func Decorate(h gate.Handler, d gate.Decorator) gate.Handler {
	return decorated{next: h, decorator: d}
}

type decorated struct {
	next      gate.Handler
	decorator gate.Decorator
}

func (d decorated) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	return d.decorator.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	return d.decorator.Deliver(ctx, db, tx, d.next)
}
