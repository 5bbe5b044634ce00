package cash

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

const optKey = "cash"

// GenesisAccount is an entry of the "cash" genesis block. The address is
// written in any format gate.ParseAddress accepts.
type GenesisAccount struct {
	Address gate.Address `json:"address"`
	Balance uint64       `json:"balance"`
}

// Initializer funds the accounts listed in the genesis file.
type Initializer struct{}

var _ gate.Initializer = Initializer{}

func (Initializer) FromGenesis(opts gate.Options, kv gate.KVStore) error {
	var accounts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accounts); err != nil {
		return err
	}
	ctrl := NewController()
	for i, a := range accounts {
		err := a.Address.Validate()
		if err == nil {
			err = ctrl.IssueCoins(kv, a.Address, a.Balance)
		}
		if err != nil {
			return errors.Wrapf(err, "genesis account %d", i)
		}
	}
	return nil
}
