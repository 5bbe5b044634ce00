package gatetest

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/crypto"
)

// NewKey returns a random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a random public key.
func NewCondition() gate.Condition {
	return NewKey().PublicKey().Condition()
}
