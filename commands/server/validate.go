package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/store"
)

// ValidateGenesis loads the app_state of every given genesis file into a
// throw away in memory store. It stops at the first file that does not
// initialize.
func ValidateGenesis(ini gate.Initializer, genesisPaths []string) error {
	if len(genesisPaths) == 0 {
		return errors.Wrap(errors.ErrInput, "usage: validate <genesis.json> [genesis.json...]")
	}
	for _, path := range genesisPaths {
		state, err := readAppState(path)
		if err == nil {
			err = ini.FromGenesis(state, store.MemStore())
		}
		if err != nil {
			return errors.Wrapf(err, "genesis %s", path)
		}
	}
	return nil
}

func readAppState(path string) (gate.Options, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	var doc struct {
		AppState gate.Options `json:"app_state"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "malformed genesis: %s", err)
	}
	return doc.AppState, nil
}
