package app

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/x/sigs"
	"github.com/iov-one/gate/x/threshold"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (gate.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ gate.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// NewTx wraps the message into a transaction without signatures.
func NewTx(msg gate.Msg) (*Tx, error) {
	var tx Tx
	switch m := msg.(type) {
	case *threshold.InitMsg:
		tx.InitMsg = m
	case *threshold.SendMsg:
		tx.SendMsg = m
	case *threshold.UpdateThresholdMsg:
		tx.UpdateThresholdMsg = m
	case *threshold.UpdateAddressesMsg:
		tx.UpdateAddressesMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unsupported message %T", msg)
	}
	return &tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (gate.Msg, error) {
	var msgs []gate.Msg
	if tx.InitMsg != nil {
		msgs = append(msgs, tx.InitMsg)
	}
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.UpdateThresholdMsg != nil {
		msgs = append(msgs, tx.UpdateThresholdMsg)
	}
	if tx.UpdateAddressesMsg != nil {
		msgs = append(msgs, tx.UpdateAddressesMsg)
	}
	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages", len(msgs))
	}
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
