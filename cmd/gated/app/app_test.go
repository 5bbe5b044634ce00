package app

import (
	"fmt"
	"testing"

	"github.com/iov-one/gate"
	gateApp "github.com/iov-one/gate/app"
	"github.com/iov-one/gate/crypto"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/x/cash"
	"github.com/iov-one/gate/x/sigs"
	"github.com/iov-one/gate/x/threshold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "gate-test-chain"

type appFixture struct {
	app    gateApp.BaseApp
	key    *crypto.PrivateKey
	seq    int64
	height int64
}

func newAppFixture(t *testing.T, balance uint64) *appFixture {
	t.Helper()

	myApp, err := GenerateApp("", log.NewNopLogger(), false)
	require.NoError(t, err)

	key := crypto.GenPrivKeyEd25519()
	genesis := fmt.Sprintf(`{"cash": [{"address": "%s", "balance": %d}]}`, key.PublicKey().Address(), balance)
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: []byte(genesis)})

	return &appFixture{app: myApp.(gateApp.BaseApp), key: key}
}

// deliver signs the message with the fixture key and runs it in a new block.
func (f *appFixture) deliver(t *testing.T, msg gate.Msg) abci.ResponseDeliverTx {
	t.Helper()

	tx, err := NewTx(msg)
	require.NoError(t, err)
	sig, err := sigs.SignTx(f.key, tx, chainID, f.seq)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(t, err)

	f.height++
	f.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: f.height}})
	chres := f.app.CheckTx(raw)
	dres := f.app.DeliverTx(raw)
	f.app.EndBlock(abci.RequestEndBlock{})
	f.app.Commit()

	// check does not move value, but any failure it reports must match
	if chres.Code != 0 {
		assert.Equal(t, chres.Code, dres.Code, dres.Log)
	}
	// the signature is consumed even if the message fails
	f.seq++
	return dres
}

func (f *appFixture) balance(t *testing.T, addr gate.Address) uint64 {
	t.Helper()

	qres := f.app.Query(abci.RequestQuery{Path: "/wallets", Data: addr})
	require.Equal(t, uint32(0), qres.Code, qres.Log)
	var w cash.Wallet
	if err := gateApp.UnmarshalOneResult(qres.Value, &w); errors.ErrNotFound.Is(err) {
		return 0
	} else if err != nil {
		t.Fatalf("cannot unmarshal wallet: %s", err)
	}
	return w.Balance
}

func TestThresholdTransfer(t *testing.T) {
	f := newAppFixture(t, 1000)
	source := f.key.PublicKey().Address()
	destination := gatetest.NewCondition().Address()
	configAddr, _, err := threshold.ConfigAddress()
	require.NoError(t, err)

	dres := f.deliver(t, &threshold.InitMsg{
		Source:      source,
		Destination: destination,
		Threshold:   100,
	})
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	var created threshold.Config
	require.NoError(t, created.Unmarshal(dres.Data))
	assert.Equal(t, source, created.Authority)
	assert.Equal(t, uint64(100), created.Threshold)

	// a second record cannot be created
	dres = f.deliver(t, &threshold.InitMsg{
		Source:      source,
		Destination: destination,
		Threshold:   1,
	})
	assert.Equal(t, errors.ErrDuplicate.ABCICode(), dres.Code)

	// below threshold is rejected and moves nothing
	dres = f.deliver(t, &threshold.SendMsg{
		Config:      configAddr,
		Source:      source,
		Destination: destination,
		Amount:      99,
	})
	assert.Equal(t, threshold.ErrBelowThreshold.ABCICode(), dres.Code)
	assert.Equal(t, uint64(1000), f.balance(t, source))
	assert.Equal(t, uint64(0), f.balance(t, destination))

	dres = f.deliver(t, &threshold.SendMsg{
		Config:      configAddr,
		Source:      source,
		Destination: destination,
		Amount:      100,
		Memo:        "exactly enough",
	})
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.NotEmpty(t, dres.Tags)
	assert.Equal(t, uint64(900), f.balance(t, source))
	assert.Equal(t, uint64(100), f.balance(t, destination))

	// more than available
	dres = f.deliver(t, &threshold.SendMsg{
		Config:      configAddr,
		Source:      source,
		Destination: destination,
		Amount:      901,
	})
	assert.Equal(t, threshold.ErrTransferFailed.ABCICode(), dres.Code)
	assert.Equal(t, uint64(900), f.balance(t, source))

	dres = f.deliver(t, &threshold.UpdateThresholdMsg{
		Config:    configAddr,
		Threshold: 500,
	})
	require.Equal(t, uint32(0), dres.Code, dres.Log)

	dres = f.deliver(t, &threshold.SendMsg{
		Config:      configAddr,
		Source:      source,
		Destination: destination,
		Amount:      100,
	})
	assert.Equal(t, threshold.ErrBelowThreshold.ABCICode(), dres.Code)

	// the record is visible over the query interface
	qres := f.app.Query(abci.RequestQuery{Path: "/threshold", Data: configAddr})
	require.Equal(t, uint32(0), qres.Code, qres.Log)
	var stored threshold.Config
	require.NoError(t, gateApp.UnmarshalOneResult(qres.Value, &stored))
	assert.Equal(t, uint64(500), stored.Threshold)
	assert.Equal(t, destination, stored.Destination)
}

func TestUnsignedTransaction(t *testing.T) {
	f := newAppFixture(t, 10)

	tx, err := NewTx(&threshold.InitMsg{
		Source:      f.key.PublicKey().Address(),
		Destination: gatetest.NewCondition().Address(),
		Threshold:   1,
	})
	require.NoError(t, err)
	raw, err := tx.Marshal()
	require.NoError(t, err)

	f.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	dres := f.app.DeliverTx(raw)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), dres.Code)

	// garbage cannot be decoded
	dres = f.app.DeliverTx([]byte{0xff, 0xff, 0xff})
	assert.NotEqual(t, uint32(0), dres.Code)
}
