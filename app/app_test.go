package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/store/iavl"
	"github.com/iov-one/gate/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

// issueHandler mints a fixed amount to the address it was created with.
type issueHandler struct {
	addr gate.Address
}

func (h issueHandler) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	return &gate.CheckResult{GasAllocated: 1}, nil
}

func (h issueHandler) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	if err := cash.NewController().IssueCoins(db, h.addr, 10); err != nil {
		return nil, err
	}
	return &gate.DeliverResult{Log: "issued"}, nil
}

// pathDecoder decodes the raw bytes as the message path.
func pathDecoder(raw []byte) (gate.Tx, error) {
	if len(raw) == 0 {
		panic("empty transaction")
	}
	return &gatetest.Tx{Msg: &gatetest.Msg{RoutePath: string(raw)}}, nil
}

func newTestApp(t *testing.T, addr gate.Address) BaseApp {
	t.Helper()

	qr := gate.NewQueryRouter()
	cash.RegisterQuery(qr)

	r := NewRouter()
	r.Handle(&gatetest.Msg{RoutePath: "test/issue"}, issueHandler{addr: addr})

	store := NewStoreApp("test-app", iavl.MockCommitStore(), qr, context.Background()).
		WithInit(ChainInitializers(cash.Initializer{}))
	return NewBaseApp(store, pathDecoder, r, false)
}

func TestBaseApp(t *testing.T) {
	chainID := "test-chain-1"
	addr := gatetest.NewCondition().Address()
	myApp := newTestApp(t, addr)

	genesis := fmt.Sprintf(`{"cash": [{"address": "%s", "balance": 50}]}`, addr)
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(genesis)})
	assert.Equal(t, chainID, myApp.GetChainID())

	// genesis can only be loaded once
	assert.Panics(t, func() {
		myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(genesis)})
	})

	myApp.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	myApp.EndBlock(abci.RequestEndBlock{})
	block1 := myApp.Commit().Data
	assert.NotEmpty(t, block1)

	// query the wallet from the committed state
	balance := func() uint64 {
		qres := myApp.Query(abci.RequestQuery{Path: "/wallets", Data: addr})
		require.Equal(t, uint32(0), qres.Code, qres.Log)
		var w cash.Wallet
		require.NoError(t, UnmarshalOneResult(qres.Value, &w))
		return w.Balance
	}
	assert.Equal(t, uint64(50), balance())

	myApp.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 2}})
	chres := myApp.CheckTx([]byte("test/issue"))
	require.Equal(t, uint32(0), chres.Code, chres.Log)
	assert.Equal(t, int64(1), chres.GasWanted)

	dres := myApp.DeliverTx([]byte("test/issue"))
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, "issued", dres.Log)

	// not visible before commit
	assert.Equal(t, uint64(50), balance())
	block2 := myApp.Commit().Data
	assert.NotEqual(t, block1, block2)
	assert.Equal(t, uint64(60), balance())

	info := myApp.Info(abci.RequestInfo{})
	assert.Equal(t, int64(2), info.LastBlockHeight)
	assert.Equal(t, block2, info.LastBlockAppHash)
	assert.Equal(t, "test-app", info.Data)
}

func TestBaseAppErrors(t *testing.T) {
	myApp := newTestApp(t, gatetest.NewCondition().Address())
	myApp.InitChain(abci.RequestInitChain{ChainId: "test-chain-2", AppStateBytes: []byte(`{}`)})

	// decoder panic is recovered
	dres := myApp.DeliverTx(nil)
	assert.Equal(t, errors.ErrPanic.ABCICode(), dres.Code)
	chres := myApp.CheckTx(nil)
	assert.Equal(t, errors.ErrPanic.ABCICode(), chres.Code)

	// unknown path
	dres = myApp.DeliverTx([]byte("test/unknown"))
	assert.Equal(t, errors.ErrNotFound.ABCICode(), dres.Code)

	// unknown query
	qres := myApp.Query(abci.RequestQuery{Path: "/nothing"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), qres.Code)

	// unsupported query modifier
	qres = myApp.Query(abci.RequestQuery{Path: "/wallets?prefix"})
	assert.Equal(t, errors.ErrInput.ABCICode(), qres.Code)
}

func TestInitChainRequiresState(t *testing.T) {
	myApp := newTestApp(t, gatetest.NewCondition().Address())
	assert.Panics(t, func() {
		myApp.InitChain(abci.RequestInitChain{ChainId: "test-chain-3"})
	})
	assert.Panics(t, func() {
		myApp.InitChain(abci.RequestInitChain{ChainId: "bad", AppStateBytes: []byte(`{}`)})
	})
}
