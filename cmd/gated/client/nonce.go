package client

import (
	"sync"

	"github.com/iov-one/gate"
)

// Nonce tracks the sequence of a signer. Next counts up locally after the
// first query, so that many transactions can be signed without a round trip
// each. It is safe for concurrent use.
type Nonce struct {
	client Client
	addr   gate.Address

	mu     sync.Mutex
	nonce  int64
	loaded bool
}

func NewNonce(client Client, addr gate.Address) *Nonce {
	return &Nonce{client: client, addr: addr}
}

// Query fetches the sequence from the node and resets the local counter
// to it.
func (n *Nonce) Query() (int64, error) {
	user, err := n.client.GetUser(n.addr)
	if err != nil {
		return 0, err
	}
	var seq int64
	if user != nil {
		seq = user.UserData.Sequence
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nonce, n.loaded = seq, true
	return seq, nil
}

// Next returns the sequence following the last returned one. The first
// call queries the node.
func (n *Nonce) Next() (int64, error) {
	n.mu.Lock()
	if !n.loaded {
		n.mu.Unlock()
		return n.Query()
	}
	defer n.mu.Unlock()
	n.nonce++
	return n.nonce, nil
}
