package server

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	iavlstore "github.com/iov-one/gate/store/iavl"
	"github.com/tendermint/iavl"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/types"
)

const (
	flagUntilError = "error"
	flagMaxTries   = "max"
)

type retryArgs struct {
	dbPath     string
	blockPath  string
	debug      bool
	untilError bool
	maxTries   int
}

func parseRetryArgs(args []string) (retryArgs, error) {
	if len(args) < 2 {
		return retryArgs{}, errors.Wrap(errors.ErrInput,
			"usage: cmd retry <path to abci.db> <path to block.json> [-debug] [-error] [-max=N]")
	}
	res := retryArgs{
		dbPath:    args[0],
		blockPath: args[1],
	}
	retryFlags := flag.NewFlagSet("retry", flag.ExitOnError)
	retryFlags.BoolVar(&res.debug, "debug", false, "print out debug info")
	retryFlags.BoolVar(&res.untilError, flagUntilError, false, "retry multiple times until an error appears")
	retryFlags.IntVar(&res.maxTries, flagMaxTries, 10, "maximum number of times to retry if -error is passed")
	err := retryFlags.Parse(args[2:])
	return res, err
}

// InlineAppGenerator builds the application on top of an already opened
// store.
type InlineAppGenerator func(gate.CommitKVStore, log.Logger, bool) abci.Application

// RetryCmd takes the app state and the last block from the file system.
// It verifies that they match, then rolls back one block and re-runs the
// given block, printing the new hash.
//
// If -error is passed, then it will try -max times until a different app
// hash results.
func RetryCmd(makeApp InlineAppGenerator, logger log.Logger, home string, args []string) error {
	flags, err := parseRetryArgs(args)
	if err != nil {
		return err
	}

	fmt.Println("--> Loading Block")
	blockJSON, err := ioutil.ReadFile(flags.blockPath)
	if err != nil {
		return errors.Wrap(err, "cannot read block")
	}
	var block *types.Block
	if err := blockCodec.UnmarshalJSON(blockJSON, &block); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse block: %s", err)
	}

	fmt.Println("--> Loading Database")
	tree, ver, err := readTree(flags.dbPath)
	if err != nil {
		return errors.Wrap(err, "error reading abci data")
	}
	if ver != block.Header.Height {
		return errors.Wrapf(errors.ErrState,
			"height mismatch - block=%d, abcistore=%d", block.Header.Height, ver)
	}

	build := func(kv gate.CommitKVStore) abci.Application {
		return makeApp(kv, logger, flags.debug)
	}

	fmt.Printf("Original Height: %d\n", block.Header.Height)
	fmt.Printf("Original Hash: %X\n", tree.Hash())
	for tries := 0; ; tries++ {
		same, err := rerunBlock(build, tree, block)
		if err != nil {
			return err
		}
		if !same || !flags.untilError || tries >= flags.maxTries {
			return nil
		}
	}
}

func readTree(dir string) (*iavl.MutableTree, int64, error) {
	db, err := openDb(dir)
	if err != nil {
		return nil, 0, err
	}
	tree := iavl.NewMutableTree(db, iavlstore.DefaultCacheSize)
	ver, err := tree.Load()
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if ver == 0 {
		return nil, 0, errors.Wrap(errors.ErrState, "iavl tree is empty")
	}
	return tree, ver, nil
}

func rerunBlock(build func(gate.CommitKVStore) abci.Application, tree *iavl.MutableTree, block *types.Block) (bool, error) {
	origHash := tree.Hash()
	backHeight := block.Header.Height - 1

	fmt.Printf("Rollback to height: %d\n", backHeight)
	if _, err := tree.LoadVersionForOverwriting(backHeight); err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}

	app := build(iavlstore.NewCommitStoreFromTree(tree))

	fmt.Println("---> Begin Block")
	app.BeginBlock(abci.RequestBeginBlock{
		Hash:   block.Header.Hash(),
		Header: types.TM2PB.Header(&block.Header),
	})
	for i, tx := range block.Txs {
		fmt.Printf("---> Deliver Tx %d\n", i)
		res := app.DeliverTx(tx)
		if res.Code != 0 {
			fmt.Printf("     code=%d log=%s\n", res.Code, res.Log)
		}
	}
	fmt.Println("---> End Block")
	app.EndBlock(abci.RequestEndBlock{Height: block.Header.Height})
	hash := app.Commit().Data
	fmt.Printf("Recomputed Hash: %X\n", hash)

	return bytes.Equal(origHash, hash), nil
}
