package app

import (
	"github.com/iov-one/gate"
)

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...gate.Initializer) gate.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []gate.Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts gate.Options, kv gate.KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
