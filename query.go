package gate

import (
	"fmt"
	"sort"
	"strings"
)

// KeyQueryMod is the only supported query modifier. It returns the single
// model stored under the exact key provided.
const KeyQueryMod = ""

// Model is a single key/value pair returned by a query. Key is the full
// database key, including the bucket prefix.
type Model struct {
	Key   []byte
	Value []byte
}

func Pair(key, value []byte) Model {
	return Model{
		Key:   key,
		Value: value,
	}
}

// QueryHandler answers queries for one path.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of one extension.
type QueryRegister func(QueryRouter)

// QueryRouter maps a query path, such as "/threshold", to its handler.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{
		routes: make(map[string]QueryHandler),
	}
}

func (r QueryRouter) RegisterAll(qr ...QueryRegister) {
	for _, q := range qr {
		q(r)
	}
}

// Register adds a handler for given path. It panics if the path does not
// start with a slash or if it is already taken.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("query path must start with a slash: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path, or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}

// Paths returns all registered paths in lexical order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SplitQueryPath separates the route from the modifier, which is
// everything after the first "?".
func SplitQueryPath(path string) (route, mod string) {
	chunks := strings.SplitN(path, "?", 2)
	if len(chunks) == 2 {
		return chunks[0], chunks[1]
	}
	return path, KeyQueryMod
}
