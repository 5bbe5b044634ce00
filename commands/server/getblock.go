package server

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iov-one/gate/errors"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/blockchain"
	dbm "github.com/tendermint/tendermint/libs/db"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

// blockCodec encodes blocks the way the tendermint rpc does.
var blockCodec = amino.NewCodec()

func init() {
	ctypes.RegisterAmino(blockCodec)
}

// GetBlockCmd prints a block of a tendermint blockstore.db as indented
// JSON. The latest block is printed unless -height is given.
func GetBlockCmd(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(errors.ErrInput, "usage: getblock <blockstore.db> [-height=H]")
	}
	fs := flag.NewFlagSet("getblock", flag.ExitOnError)
	height := fs.Int64("height", 0, "height of the block, latest when zero")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	db, err := openDb(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	blocks := blockchain.NewBlockStore(db)
	h := *height
	if h == 0 {
		h = blocks.Height()
	}
	block := blocks.LoadBlock(h)
	if block == nil {
		return errors.Wrapf(errors.ErrNotFound, "block at height %d", h)
	}
	raw, err := blockCodec.MarshalJSONIndent(block, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode block")
	}
	fmt.Println(string(raw))
	return nil
}

// splitDbPath splits "<dir>/<name>.db" into the directory and the name of
// a leveldb database.
func splitDbPath(path string) (string, string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".db")
	if trimmed == strings.TrimSuffix(path, "/") {
		return "", "", errors.Wrapf(errors.ErrInput, "%s: database directory must end with .db", path)
	}
	dir, name := filepath.Split(trimmed)
	if dir == "" || name == "" {
		return "", "", errors.Wrapf(errors.ErrInput, "%s: need a directory and a name", path)
	}
	return filepath.Clean(dir), name, nil
}

func openDb(path string) (dbm.DB, error) {
	dir, name, err := splitDbPath(path)
	if err != nil {
		return nil, err
	}
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return db, nil
}
