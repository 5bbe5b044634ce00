package app

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/gogo/protobuf/protoc-gen-gogo/descriptor"
	"github.com/iov-one/gate/crypto"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/x/sigs"
	"github.com/iov-one/gate/x/threshold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxMsg(t *testing.T) {
	var empty Tx
	_, err := empty.GetMsg()
	assert.True(t, errors.ErrMsg.Is(err))

	both := Tx{
		InitMsg:            &threshold.InitMsg{},
		UpdateThresholdMsg: &threshold.UpdateThresholdMsg{},
	}
	_, err = both.GetMsg()
	assert.True(t, errors.ErrMsg.Is(err))

	_, err = NewTx(&gatetest.Msg{RoutePath: "test/foo"})
	assert.True(t, errors.ErrMsg.Is(err))

	send := &threshold.SendMsg{
		Config:      gatetest.NewCondition().Address(),
		Source:      gatetest.NewCondition().Address(),
		Destination: gatetest.NewCondition().Address(),
		Amount:      42,
		Memo:        "rent",
	}
	tx, err := NewTx(send)
	require.NoError(t, err)
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, send, msg)
}

func TestTxSerialization(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	tx, err := NewTx(&threshold.UpdateAddressesMsg{
		Config:      gatetest.NewCondition().Address(),
		Source:      gatetest.NewCondition().Address(),
		Destination: gatetest.NewCondition().Address(),
	})
	require.NoError(t, err)

	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(key, tx, "test-chain", 3)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	// signatures are not part of the signed bytes
	signBytes, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signBytes)
	assert.Len(t, tx.Signatures, 1)

	raw, err := tx.Marshal()
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	assert.Equal(t, tx, decoded)
}

func TestTxProtobufEncoding(t *testing.T) {
	tx, err := NewTx(&threshold.UpdateThresholdMsg{
		Config:    gatetest.NewCondition().Address(),
		Threshold: 300,
	})
	require.NoError(t, err)
	sig, err := sigs.SignTx(crypto.GenPrivKeyEd25519(), tx, "test-chain", 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	raw, err := tx.Marshal()
	require.NoError(t, err)
	viaProto, err := proto.Marshal(tx)
	require.NoError(t, err)
	assert.Equal(t, raw, viaProto)

	var back Tx
	require.NoError(t, proto.Unmarshal(raw, &back))
	assert.Equal(t, tx, &back)

	fd, md := descriptor.ForMessage(&back)
	assert.Equal(t, "gated", fd.GetPackage())
	assert.Equal(t, "Tx", md.GetName())
	assert.Equal(t, ".sigs.StdSignature", md.GetField()[0].GetTypeName())

	// threshold sent with the wire type of a bytes field
	bad := append([]byte{0x22, 0x02, 0x12, 0x00}, raw...)
	_, err = TxDecoder(bad)
	assert.Error(t, err)
}
