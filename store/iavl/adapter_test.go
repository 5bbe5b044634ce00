package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/gate/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
)

func assertGetHas(t testing.TB, kv store.ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

func TestCacheGetSet(t *testing.T) {
	commit := MockCommitStore()
	base := commit.Adapter()

	k, v := []byte("french"), []byte("fry")
	assertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	require.NoError(t, cache.Write())
	assertGetHas(t, base, k2, v2, true)

	discard := commit.CacheWrap()
	require.NoError(t, discard.Delete(k))
	discard.Discard()
	assertGetHas(t, base, k, v, true)

	assert.Error(t, base.Set(nil, v))
	assert.Error(t, base.Set(k, nil))
}

func TestCommitLoad(t *testing.T) {
	db := dbm.NewMemDB()
	commit := newCommitStore(db)

	require.NoError(t, commit.LoadLatestVersion())
	id, err := commit.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(0), id.Version)

	k, v := []byte("key"), []byte("value")
	cache := commit.CacheWrap()
	require.NoError(t, cache.Set(k, v))
	require.NoError(t, cache.Write())

	first, err := commit.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.NotEmpty(t, first.Hash)

	require.NoError(t, commit.Adapter().Set([]byte("other"), []byte("x")))
	second, err := commit.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Version)
	assert.NotEqual(t, first.Hash, second.Hash)

	// uncommitted changes are lost on reload
	require.NoError(t, commit.Adapter().Set([]byte("lost"), []byte("x")))

	reopened := newCommitStore(db)
	require.NoError(t, reopened.LoadLatestVersion())
	latest, err := reopened.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, second, latest)
	got, err := reopened.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	got, err = reopened.Get([]byte("lost"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDiskCommitStore(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	commit, err := NewCommitStore(tmpDir, "base")
	require.NoError(t, err)
	require.NoError(t, commit.LoadLatestVersion())
	require.NoError(t, commit.Adapter().Set([]byte("a"), []byte("b")))
	id, err := commit.Commit()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
}
