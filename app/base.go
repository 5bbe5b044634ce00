package app

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is the ABCI application: StoreApp for state and queries, plus a
// decoder and a handler for the transactions of a block.
type BaseApp struct {
	*StoreApp
	decoder gate.TxDecoder
	handler gate.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application. With debug set, internal
// error details are returned to the client.
func NewBaseApp(store *StoreApp, decoder gate.TxDecoder, handler gate.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	ctx, tx, err := b.prepare("deliver_tx", txBytes)
	if err != nil {
		return gate.DeliverTxError(err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err != nil {
		b.rejected(ctx, err)
	}
	return gate.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	ctx, tx, err := b.prepare("check_tx", txBytes)
	if err != nil {
		return gate.CheckTxError(err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	if err != nil {
		b.rejected(ctx, err)
	}
	return gate.CheckOrError(res, err, b.debug)
}

// prepare decodes the transaction and returns the block context annotated
// with the call and the message path.
func (b BaseApp) prepare(call string, txBytes []byte) (gate.Context, gate.Tx, error) {
	tx, err := b.decode(txBytes)
	if err != nil {
		gate.GetLogger(b.BlockContext()).Debug("cannot decode transaction",
			"call", call, "err", err)
		return nil, nil, err
	}
	ctx := gate.WithLogInfo(b.BlockContext(),
		"call", call,
		"path", gate.GetPath(tx))
	return ctx, tx, nil
}

// decode calls the decoder. A panicking decoder fails with ErrPanic.
func (b BaseApp) decode(txBytes []byte) (tx gate.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(txBytes)
}

func (b BaseApp) rejected(ctx gate.Context, err error) {
	code, _ := errors.ABCIInfo(err, true)
	gate.GetLogger(ctx).Debug("transaction rejected", "code", code, "err", err)
}
