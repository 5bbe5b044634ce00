package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticQuery []Model

func (s staticQuery) Query(ReadOnlyKVStore, string, []byte) ([]Model, error) {
	return s, nil
}

func TestQueryRouter(t *testing.T) {
	qr := NewQueryRouter()
	wallets := staticQuery{Pair([]byte("cash:a"), []byte{1})}
	qr.RegisterAll(
		func(r QueryRouter) { r.Register("/wallets", wallets) },
		func(r QueryRouter) { r.Register("/threshold", staticQuery{}) },
	)

	assert.Equal(t, wallets, qr.Handler("/wallets"))
	assert.Nil(t, qr.Handler("/auth"))
	assert.Equal(t, []string{"/threshold", "/wallets"}, qr.Paths())

	assert.Panics(t, func() { qr.Register("/wallets", staticQuery{}) })
	assert.Panics(t, func() { qr.Register("auth", staticQuery{}) })
}

func TestSplitQueryPath(t *testing.T) {
	cases := map[string]struct {
		route string
		mod   string
	}{
		"/threshold":          {route: "/threshold", mod: KeyQueryMod},
		"/wallets?prefix":     {route: "/wallets", mod: "prefix"},
		"/auth?range?ignored": {route: "/auth", mod: "range?ignored"},
		"":                    {route: "", mod: KeyQueryMod},
	}
	for path, tc := range cases {
		route, mod := SplitQueryPath(path)
		assert.Equal(t, tc.route, route, path)
		assert.Equal(t, tc.mod, mod, path)
	}
}
