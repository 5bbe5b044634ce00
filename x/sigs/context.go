package sigs

import (
	"context"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/x"
)

type contextKey int

const signersKey contextKey = 0

// withSigners is unexported, only the signature decorator grants
// signers.
func withSigners(ctx gate.Context, signers []gate.Condition) gate.Context {
	return context.WithValue(ctx, signersKey, signers)
}

// Authenticate reports the conditions verified by the signature
// decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns the verified signers in signing order, nil when
// the transaction carried no signature.
func (Authenticate) GetConditions(ctx gate.Context) []gate.Condition {
	signers, _ := ctx.Value(signersKey).([]gate.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx gate.Context, addr gate.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
