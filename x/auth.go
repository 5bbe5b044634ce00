package x

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

// Authenticator extracts the signers of the current transaction from the
// context. Handlers receive one in their constructor and never look at
// signatures themselves.
type Authenticator interface {
	// GetConditions returns every condition the transaction fulfils. The
	// first one is the main signer.
	GetConditions(gate.Context) []gate.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(gate.Context, gate.Address) bool
}

// MultiAuth merges the signers of several authenticators, in order.
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

func (m MultiAuth) GetConditions(ctx gate.Context) []gate.Condition {
	var res []gate.Condition
	for _, impl := range m.impls {
		res = append(res, impl.GetConditions(ctx)...)
	}
	return res
}

func (m MultiAuth) HasAddress(ctx gate.Context, addr gate.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first condition, or nil if the transaction is not
// signed.
func MainSigner(ctx gate.Context, auth Authenticator) gate.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// RequireSigner returns ErrUnauthorized unless addr signed the transaction.
// Role names the party in the error message.
func RequireSigner(ctx gate.Context, auth Authenticator, addr gate.Address, role string) error {
	if len(addr) == 0 || !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s signature required", role)
	}
	return nil
}
