/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* Models are stored under a primary key, prefixed with the bucket name.
* Buckets can be exposed to the query router.
*/
package orm

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	gate.Persistent
	Validate() error
}

// ModelBucket is a prefixed subspace of the DB holding models of a single
// type.
type ModelBucket struct {
	name   string
	prefix []byte
	model  reflect.Type
}

var _ gate.QueryHandler = ModelBucket{}

// NewModelBucket creates a bucket to store models of the same type as given
// example. The example must be a pointer.
func NewModelBucket(name string, example Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	t := reflect.TypeOf(example)
	if t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("model must be a pointer, got %T", example))
	}
	return ModelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  t.Elem(),
	}
}

// Name returns the bucket name.
func (b ModelBucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b ModelBucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One query the database for a single model instance. Result is loaded into
// given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database.
// If given model type cannot be used to contain stored entity, ErrType
// is returned.
func (b ModelBucket) One(db gate.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != reflect.PtrTo(b.model) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %s", dest, b.model)
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}

// Has returns true if an entity with given key exists.
func (b ModelBucket) Has(db gate.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot read from the database")
	}
	return ok, nil
}

// Put saves given model in the database. The model is validated first.
func (b ModelBucket) Put(db gate.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != reflect.PtrTo(b.model) {
		return errors.Wrapf(errors.ErrType, "%T cannot be stored in %s bucket", m, b.name)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal")
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (b ModelBucket) Delete(db gate.KVStore, key []byte) error {
	ok, err := b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s bucket", b.name)
	}
	return db.Delete(b.DBKey(key))
}

// Register registers this bucket for queries.
// You can define a name here for queries, which is
// different than the bucket name used to prefix the data
func (b ModelBucket) Register(name string, r gate.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter. The data is the primary key.
// A miss returns no models and no error.
func (b ModelBucket) Query(db gate.ReadOnlyKVStore, mod string, data []byte) ([]gate.Model, error) {
	if mod != gate.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	key := b.DBKey(data)
	value, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []gate.Model{gate.Pair(key, value)}, nil
}
