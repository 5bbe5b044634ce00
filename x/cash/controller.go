package cash

import (
	"math"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

// CoinMover is the interface other extensions use to transfer value.
type CoinMover interface {
	// MoveCoins transfers amount from src to dest. It fails without
	// modifying the state when src does not hold enough value.
	MoveCoins(db gate.KVStore, src, dest gate.Address, amount uint64) error
}

// Controller is the functionality needed by cash.Handler and the genesis
// initializer.
type Controller interface {
	CoinMover
	Balance(db gate.ReadOnlyKVStore, addr gate.Address) (uint64, error)
	IssueCoins(db gate.KVStore, dest gate.Address, amount uint64) error
}

// BaseController is a simple implementation of Controller
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default bucket.
func NewController() BaseController {
	return BaseController{bucket: NewBucket()}
}

// Balance returns the value held by given address. Unknown addresses hold
// nothing.
func (c BaseController) Balance(db gate.ReadOnlyKVStore, addr gate.Address) (uint64, error) {
	if err := addr.Validate(); err != nil {
		return 0, errors.Wrap(err, "address")
	}
	w, err := c.bucket.GetOrCreate(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
//
// A zero amount does not change the state. Moving value to the same
// address requires the value to be available and does not change the
// state either.
func (c BaseController) MoveCoins(db gate.KVStore, src, dest gate.Address, amount uint64) error {
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	if amount == 0 {
		return nil
	}

	sender, err := c.bucket.GetOrCreate(db, src)
	if err != nil {
		return err
	}
	if sender.Balance < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: have %d, need %d", sender.Balance, amount)
	}
	if src.Equals(dest) {
		return nil
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if recipient.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	sender.Balance -= amount
	recipient.Balance += amount

	if err := c.bucket.Save(db, src, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, dest, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db gate.KVStore, dest gate.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}
	w, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if w.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.Balance += amount
	return c.bucket.Save(db, dest, w)
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr gate.QueryRouter) {
	NewBucket().Register("wallets", qr)
}
