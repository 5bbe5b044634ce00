package store

import "github.com/iov-one/gate"

// Aliases of the store interfaces of the root package.
type (
	ReadOnlyKVStore  = gate.ReadOnlyKVStore
	SetDeleter       = gate.SetDeleter
	KVStore          = gate.KVStore
	Batch            = gate.Batch
	CacheableKVStore = gate.CacheableKVStore
	KVCacheWrap      = gate.KVCacheWrap
	CommitKVStore    = gate.CommitKVStore
	CommitID         = gate.CommitID
)
