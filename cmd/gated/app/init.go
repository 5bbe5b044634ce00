package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/app"
	"github.com/iov-one/gate/crypto"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/x/cash"
	"github.com/iov-one/gate/x/threshold"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	defaultBalance   uint64 = 123456789
	defaultThreshold uint64 = 100
)

// GenInitOptions will produce genesis options for one rich account
// that is also the source and the authority of the threshold record.
// Each of them can be overwritten:
//
//   gated init [balance] [threshold] [destination]
func GenInitOptions(args []string) (json.RawMessage, error) {
	balance := defaultBalance
	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "invalid balance %q", args[0])
		}
		balance = v
	}

	limit := defaultThreshold
	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "invalid threshold %q", args[1])
		}
		limit = v
	}

	// if no address provided, auto-generate one
	// and print out the keys
	addr, keys, err := GenerateCoinKey()
	if err != nil {
		return nil, err
	}
	fmt.Println(keys)

	dest := addr
	if len(args) > 2 {
		dest, err = gate.ParseAddress(args[2])
		if err != nil {
			return nil, errors.Wrap(err, "destination")
		}
	}

	opts := genesis{
		Cash: []cash.GenesisAccount{
			{Address: addr, Balance: balance},
		},
		Threshold: &threshold.GenesisConfig{
			Authority:   addr,
			Source:      addr,
			Destination: dest,
			Threshold:   limit,
		},
	}
	return json.MarshalIndent(opts, "", "  ")
}

type genesis struct {
	Cash      []cash.GenesisAccount    `json:"cash"`
	Threshold *threshold.GenesisConfig `json:"threshold,omitempty"`
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "gate.db")
	}

	application, err := Application("gated", Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

// Initializers returns all genesis initializers used by the application.
func Initializers() gate.Initializer {
	return app.ChainInitializers(
		&cash.Initializer{},
		&threshold.Initializer{},
	)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
func GenerateCoinKey() (gate.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}
	return addr, string(keys), nil
}

// InlineApp will take a previously prepared CommitStore and return a complete Application
func InlineApp(kv gate.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	ctx := context.Background()
	store := app.NewStoreApp("gated", kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, TxDecoder, Stack(), debug)
	base.WithInit(Initializers())
	base.WithLogger(logger)
	return base
}
