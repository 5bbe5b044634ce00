package gate

import (
	"encoding/json"

	"github.com/iov-one/gate/errors"
)

// Handler processes the messages routed to it. Check runs when a
// transaction enters the mempool, Deliver when it is part of a block.
type Handler interface {
	Checker
	Deliverer
}

type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around the next handler, for example to authenticate
// transactions. It may stop the call by returning without calling next.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds handlers to messages. Handle routes every message with
// the path of msg to h.
type Registry interface {
	Handle(msg Msg, h Handler)
}

// Options is the app_state of the genesis file, one JSON document per
// extension.
type Options map[string]json.RawMessage

// ReadOptions decodes the document of key into obj. A missing key leaves
// obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %s: %s", key, err)
	}
	return nil
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
