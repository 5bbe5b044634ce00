package gate

// ReadOnlyKVStore reads single keys. Get returns a nil value for a missing
// key.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// SetDeleter writes single keys. Callers must not modify key or value
// after passing them in.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is the store handlers work with.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
	NewBatch() Batch
}

// Batch collects writes and applies them together on Write.
type Batch interface {
	SetDeleter
	Write() error
}

// CacheableKVStore can open a cache on top of itself. Writes to the cache
// are visible through the cache only, until they are written back.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a cache on top of another store. Write applies the cached
// writes to the parent store, Discard drops them. A cache can be cached
// again.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the persistent root store of the application. Writes go
// through a CacheWrap, Commit saves them as a new version.
type CommitKVStore interface {
	// Get reads the last committed version.
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap
	Commit() (CommitID, error)
	// LoadLatestVersion loads the last version fully written to disk.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by its number and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
