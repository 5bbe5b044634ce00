package store

// Recorder interface is implemented by anything returned from
// NewRecordingStore
type Recorder interface {
	// KVPairs returns all keys changed through the store. The value is
	// the written value for a set and nil for a delete.
	KVPairs() map[string][]byte
}

// NewRecordingStore initializes a recording store wrapping this
// base store, using cached alternative if possible
//
// The cacheable form is returned when possible, so that downstream
// components (like Savepoint) can still cache wrap the store.
func NewRecordingStore(db KVStore) KVStore {
	r := &recordingStore{
		KVStore: db,
		changes: make(map[string][]byte),
	}
	if _, ok := db.(CacheableKVStore); ok {
		return &cacheableRecordingStore{r}
	}
	return r
}

// recordingStore wraps a normal KVStore and records any change operations
type recordingStore struct {
	KVStore
	changes map[string][]byte
}

var _ Recorder = (*recordingStore)(nil)

func (r *recordingStore) KVPairs() map[string][]byte {
	return r.changes
}

// Set records the changes while performing
func (r *recordingStore) Set(key, value []byte) error {
	if err := r.KVStore.Set(key, value); err != nil {
		return err
	}
	r.changes[string(key)] = value
	return nil
}

// Delete records the changes while performing
func (r *recordingStore) Delete(key []byte) error {
	if err := r.KVStore.Delete(key); err != nil {
		return err
	}
	r.changes[string(key)] = nil
	return nil
}

// NewBatch makes sure all writes go through this one
func (r *recordingStore) NewBatch() Batch {
	return &recorderBatch{
		changes: r.changes,
		b:       r.KVStore.NewBatch(),
	}
}

// cacheableRecordingStore records changes, including the ones written
// through a cache wrap once it is flushed.
type cacheableRecordingStore struct {
	*recordingStore
}

var _ CacheableKVStore = (*cacheableRecordingStore)(nil)

// CacheWrap makes sure all cached writes also go through this
func (r *cacheableRecordingStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(r, r.NewBatch(), nil)
}

type recorderBatch struct {
	changes map[string][]byte
	b       Batch
	ops     []Op
}

var _ Batch = (*recorderBatch)(nil)

func (r *recorderBatch) Set(key, value []byte) error {
	r.ops = append(r.ops, SetOp(key, value))
	return r.b.Set(key, value)
}

func (r *recorderBatch) Delete(key []byte) error {
	r.ops = append(r.ops, DelOp(key))
	return r.b.Delete(key)
}

// Write flushes the underlying batch and records the changes only when
// the write succeeded.
func (r *recorderBatch) Write() error {
	if err := r.b.Write(); err != nil {
		return err
	}
	for _, op := range r.ops {
		if op.IsSetOp() {
			r.changes[string(op.Key())] = op.Value()
		} else {
			r.changes[string(op.Key())] = nil
		}
	}
	r.ops = nil
	return nil
}
