package sigs

import (
	"github.com/iov-one/gate"
)

// StdTx is a minimal signed transaction used in tests.
type StdTx struct {
	gate.Tx
	payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{payload: payload}
}

func (tx StdTx) GetSignBytes() ([]byte, error) {
	return tx.payload, nil
}

func (tx StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []gate.Condition
}

var _ gate.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &gate.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &gate.DeliverResult{}, nil
}
