package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the abci calls that deal with state: genesis, block
// bookkeeping, commits and queries. Embed it next to a BaseApp to get a
// complete application.
//
// Info, InitChain, BeginBlock, EndBlock and Commit have no way to report
// a failure to tendermint. They panic instead, which halts the node.
type StoreApp struct {
	name   string
	logger log.Logger

	store       *CommitStore
	initializer gate.Initializer
	queryRouter gate.QueryRouter

	// chainID is empty until genesis ran.
	chainID string

	// baseContext lives as long as the application, blockContext is
	// replaced on every BeginBlock.
	baseContext  gate.Context
	blockContext gate.Context
}

// NewStoreApp loads the latest committed state of store. The chain id and
// the last height are restored from it. It panics if the state cannot be
// loaded.
func NewStoreApp(name string, store gate.CommitKVStore, queryRouter gate.QueryRouter, baseContext gate.Context) *StoreApp {
	cs, err := NewCommitStore(store)
	if err != nil {
		panic(err)
	}
	s := (&StoreApp{
		name:        name,
		store:       cs,
		queryRouter: queryRouter,
		baseContext: baseContext,
	}).WithLogger(log.NewNopLogger())

	if s.chainID, err = loadChainID(s.DeliverStore()); err != nil {
		panic(err)
	}
	if s.chainID != "" {
		s.baseContext = gate.WithChainID(s.baseContext, s.chainID)
	}
	last, err := cs.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = gate.WithHeight(s.baseContext, last.Version)
	return s
}

// GetChainID returns the chain id, or an empty string before genesis.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the initializer that loads the genesis app_state.
func (s *StoreApp) WithInit(init gate.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger of the application and of every context it
// creates.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = gate.WithLogger(s.baseContext, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the context of the block being processed.
func (s *StoreApp) BlockContext() gate.Context {
	return s.blockContext
}

func (s *StoreApp) DeliverStore() gate.CacheableKVStore {
	return s.store.DeliverStore()
}

func (s *StoreApp) CheckStore() gate.CacheableKVStore {
	return s.store.CheckStore()
}

// loadGenesis stores the chain id and hands the app_state to the
// initializer. It runs once, on the first start of a chain.
func (s *StoreApp) loadGenesis(appState []byte, chainID string) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrState, "genesis.json has no app_state, run the init command first")
	}
	var opts gate.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrapf(errors.ErrInput, "app_state: %s", err)
	}
	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = gate.WithChainID(s.baseContext, chainID)
	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// Info reports the name and version of the application and the last
// committed height and hash.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	last, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("info", "height", last.Version, "hash", fmt.Sprintf("%X", last.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          gate.Version(),
		LastBlockHeight:  last.Version,
		LastBlockAppHash: last.Hash,
	}
}

// SetOption is not supported.
func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not supported"}
}

func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.loadGenesis(req.AppStateBytes, req.ChainId); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	s.blockContext = gate.WithHeight(s.baseContext, req.Header.Height)
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("commit", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// Query reads the last committed state. The path is "/<bucket>" with an
// optional "?<mod>" suffix, and Data is the key to look up. The height of
// the request is ignored.
//
// Key and Value of the response are ResultSet encodings of the same
// length, one entry per model found.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := gate.SplitQueryPath(req.Path)
	handler := s.queryRouter.Handler(path)
	if handler == nil {
		return queryError(errors.Wrapf(errors.ErrNotFound, "unexpected query path %q, known: %s",
			req.Path, strings.Join(s.queryRouter.Paths(), ", ")))
	}
	last, err := s.store.CommitInfo()
	if err != nil {
		return queryError(err)
	}
	models, err := handler.Query(s.store.CommittedStore(), mod, req.Data)
	if err != nil {
		return queryError(err)
	}
	res := abci.ResponseQuery{Height: last.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return queryError(err)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return queryError(err)
	}
	return res
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log}
}
