package orm

import (
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/store"
)

func (c *Counter) Validate() error {
	if c.Count > 1000 {
		return errors.Wrap(errors.ErrModel, "too big")
	}
	return nil
}

type other struct{ Counter }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	assert.Nil(t, b.Put(db, []byte("c1"), &Counter{Count: 1}))

	var c1 Counter
	assert.Nil(t, b.One(db, []byte("c1"), &c1))
	assert.Equal(t, uint64(1), c1.Count)

	ok, err := b.Has(db, []byte("c1"))
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	assert.Nil(t, b.Delete(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("unknown")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("c1"), &c1))
}

func TestModelBucketPutValidation(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	assert.IsErr(t, errors.ErrModel, b.Put(db, []byte("c1"), &Counter{Count: 1001}))
	assert.IsErr(t, errors.ErrEmpty, b.Put(db, nil, &Counter{Count: 1}))
	assert.IsErr(t, errors.ErrType, b.Put(db, []byte("c1"), &other{}))
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("c1"), &other{}))
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})
	assert.Nil(t, b.Put(db, []byte("c1"), &Counter{Count: 7}))

	qr := gate.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	if h == nil {
		t.Fatal("query handler not registered")
	}

	res, err := h.Query(db, gate.KeyQueryMod, []byte("c1"))
	assert.Nil(t, err)
	if len(res) != 1 {
		t.Fatalf("want one result, got %d", len(res))
	}
	assert.Equal(t, []byte("cnts:c1"), res[0].Key)
	var got Counter
	assert.Nil(t, got.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(7), got.Count)

	res, err = h.Query(db, gate.KeyQueryMod, []byte("missing"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	_, err = h.Query(db, "prefix", nil)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("a", &Counter{}) })
	assert.Panics(t, func() { NewModelBucket("UPPER", &Counter{}) })
	assert.Equal(t, "cnts", NewModelBucket("cnts", &Counter{}).Name())
}
