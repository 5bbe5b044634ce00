package app

import (
	"testing"

	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/store/iavl"
)

func TestCommitStore(t *testing.T) {
	cs, err := NewCommitStore(iavl.MockCommitStore())
	assert.Nil(t, err)

	k, v := []byte("key"), []byte("value")
	assert.Nil(t, cs.DeliverStore().Set(k, v))
	assert.Nil(t, cs.CheckStore().Set([]byte("check"), v))

	// nothing committed yet
	got, err := cs.CommittedStore().Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)

	id, err := cs.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	got, err = cs.CommittedStore().Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)

	// check writes are discarded and fresh caches see the committed state
	has, err := cs.CheckStore().Has([]byte("check"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
	got, err = cs.DeliverStore().Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)

	info, err := cs.CommitInfo()
	assert.Nil(t, err)
	assert.Equal(t, id, info)
}

func TestChainID(t *testing.T) {
	cs, err := NewCommitStore(iavl.MockCommitStore())
	assert.Nil(t, err)
	db := cs.DeliverStore()

	id, err := loadChainID(db)
	assert.Nil(t, err)
	assert.Equal(t, "", id)

	assert.IsErr(t, errors.ErrInput, saveChainID(db, "no"))
	assert.Nil(t, saveChainID(db, "gate-test"))
	assert.IsErr(t, errors.ErrUnauthorized, saveChainID(db, "gate-other"))

	id, err = loadChainID(db)
	assert.Nil(t, err)
	assert.Equal(t, "gate-test", id)
}
