package cash

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// Validate always succeeds, any balance is valid.
func (w *Wallet) Validate() error {
	return nil
}

// Bucket stores wallets by owner address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Wallet{}),
	}
}

// GetOrCreate returns the wallet of given address, or an empty wallet if
// none is stored yet.
func (b Bucket) GetOrCreate(db gate.ReadOnlyKVStore, addr gate.Address) (*Wallet, error) {
	var w Wallet
	switch err := b.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, err
	}
}

// Save stores the wallet under given address.
func (b Bucket) Save(db gate.KVStore, addr gate.Address, w *Wallet) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "wallet owner")
	}
	return b.Put(db, addr, w)
}
