package threshold

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

const optKey = "threshold"

// GenesisConfig is the optional genesis block creating the record at chain
// start.
type GenesisConfig struct {
	Authority   gate.Address `json:"authority"`
	Source      gate.Address `json:"source"`
	Destination gate.Address `json:"destination"`
	Threshold   uint64       `json:"threshold"`
}

// Initializer reads the "threshold" genesis block.
type Initializer struct{}

var _ gate.Initializer = Initializer{}

// FromGenesis creates the record if the genesis file declares one.
func (Initializer) FromGenesis(opts gate.Options, kv gate.KVStore) error {
	var gen *GenesisConfig
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if gen == nil {
		return nil
	}

	_, tag, err := ConfigAddress()
	if err != nil {
		return err
	}
	cfg := Config{
		Authority:     gen.Authority,
		Source:        gen.Source,
		Destination:   gen.Destination,
		Threshold:     gen.Threshold,
		DerivationTag: uint32(tag),
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "genesis config")
	}
	return NewBucket().Create(kv, &cfg)
}
