package app

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

// CommitStore wraps the persistent store of the application. Check and
// deliver calls each work on their own cache of the last committed state.
// Commit flushes only the deliver cache, the check cache is dropped.
type CommitStore struct {
	committed gate.CommitKVStore
	deliver   gate.KVCacheWrap
	check     gate.KVCacheWrap
}

// NewCommitStore loads the latest version of store and prepares fresh
// check and deliver caches on top of it.
func NewCommitStore(store gate.CommitKVStore) (*CommitStore, error) {
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	cs := &CommitStore{committed: store}
	cs.reset()
	return cs, nil
}

func (cs *CommitStore) reset() {
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
}

// CommitInfo returns the version and hash of the last commit.
func (cs *CommitStore) CommitInfo() (gate.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit persists everything delivered since the previous commit.
func (cs *CommitStore) Commit() (gate.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return gate.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()
	id, err := cs.committed.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	cs.reset()
	return id, nil
}

// CheckStore is the store of CheckTx calls.
func (cs *CommitStore) CheckStore() gate.CacheableKVStore {
	return cs.check
}

// DeliverStore is the store of InitChain and DeliverTx calls.
func (cs *CommitStore) DeliverStore() gate.CacheableKVStore {
	return cs.deliver
}

// CommittedStore returns a view of the last committed state. Queries
// read from it.
func (cs *CommitStore) CommittedStore() gate.ReadOnlyKVStore {
	return cs.committed.CacheWrap()
}

// chainIDKey holds the chain id set at genesis. The "_gt:" prefix is
// reserved for data of the application itself.
const chainIDKey = "_gt:chainID"

// loadChainID returns the stored chain id, or an empty string before
// genesis.
func loadChainID(kv gate.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID stores the chain id once. A second call fails.
func saveChainID(kv gate.KVStore, chainID string) error {
	if !gate.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
