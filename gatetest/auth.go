package gatetest

import (
	"context"
	"fmt"

	"github.com/iov-one/gate"
)

// Auth is a mock x.Authenticator that accepts a fixed set of signers.
//
// Signer, when set, is the main signer and always comes first. Signers are
// the remaining ones, in the order given.
type Auth struct {
	Signer  gate.Condition
	Signers []gate.Condition
}

func (a *Auth) GetConditions(gate.Context) []gate.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	conds := make([]gate.Condition, 0, len(a.Signers)+1)
	conds = append(conds, a.Signer)
	return append(conds, a.Signers...)
}

func (a *Auth) HasAddress(ctx gate.Context, addr gate.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth is a mock x.Authenticator that reads the signers from the
// context, under Key. Two instances with different keys do not see each
// other's signers.
type CtxAuth struct {
	Key string
}

// SetConditions returns a context authenticated with given signers. The
// first one is the main signer.
func (a *CtxAuth) SetConditions(ctx gate.Context, signers ...gate.Condition) gate.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetConditions(ctx gate.Context) []gate.Condition {
	switch v := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []gate.Condition:
		return v
	default:
		panic(fmt.Sprintf("%q holds %T, not conditions", a.Key, v))
	}
}

func (a *CtxAuth) HasAddress(ctx gate.Context, addr gate.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []gate.Condition, addr gate.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
