/*
Package sigs authenticates transactions by their signatures. Every signer
has a sequence that must be part of its signature and that grows by one
with each signed transaction, so a signed transaction cannot be replayed.
*/
package sigs

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

// signatureVerifyCost is the gas charged on CheckTx per valid signature.
const signatureVerifyCost = 500

// RegisterQuery serves the signer records under "/auth".
func RegisterQuery(qr gate.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures of a transaction and passes the
// signers on through the context, see Authenticate. By default a
// transaction without a valid signature is rejected.
type Decorator struct {
	allowMissingSigs bool
}

var _ gate.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs lets unsigned transactions through with no signers.
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

func (d Decorator) Check(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Checker) (*gate.CheckResult, error) {
	ctx, signers, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	res.GasAllocated += int64(signers * signatureVerifyCost)
	return res, nil
}

func (d Decorator) Deliver(ctx gate.Context, store gate.KVStore, tx gate.Tx, next gate.Deliverer) (*gate.DeliverResult, error) {
	ctx, _, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

// authenticate returns ctx extended with the verified signers and their
// number.
func (d Decorator) authenticate(ctx gate.Context, store gate.KVStore, tx gate.Tx) (gate.Context, int, error) {
	var signers []gate.Condition
	if stx, ok := tx.(SignedTx); ok {
		var err error
		signers, err = VerifyTxSignatures(store, stx, gate.GetChainID(ctx))
		if err != nil {
			return nil, 0, errors.Wrap(err, "cannot verify signatures")
		}
	}
	if len(signers) == 0 {
		if !d.allowMissingSigs {
			return nil, 0, errors.Wrap(errors.ErrUnauthorized, "missing signature")
		}
	}
	// Always replace the signer set, an unsigned tx must not inherit one.
	return withSigners(ctx, signers), len(signers), nil
}
