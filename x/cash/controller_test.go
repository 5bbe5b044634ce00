package cash

import (
	"math"
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/store"
)

func TestMoveCoins(t *testing.T) {
	alice := gatetest.NewCondition().Address()
	bob := gatetest.NewCondition().Address()

	cases := map[string]struct {
		issueAlice uint64
		issueBob   uint64
		src, dest  gate.Address
		amount     uint64
		wantErr    *errors.Error
		wantAlice  uint64
		wantBob    uint64
	}{
		"move part of the balance": {
			issueAlice: 100,
			src:        alice,
			dest:       bob,
			amount:     40,
			wantAlice:  60,
			wantBob:    40,
		},
		"move the whole balance": {
			issueAlice: 100,
			src:        alice,
			dest:       bob,
			amount:     100,
			wantAlice:  0,
			wantBob:    100,
		},
		"insufficient funds": {
			issueAlice: 10,
			src:        alice,
			dest:       bob,
			amount:     11,
			wantErr:    errors.ErrAmount,
			wantAlice:  10,
		},
		"unknown sender": {
			src:     alice,
			dest:    bob,
			amount:  1,
			wantErr: errors.ErrAmount,
		},
		"zero amount is inert": {
			issueAlice: 5,
			src:        alice,
			dest:       bob,
			amount:     0,
			wantAlice:  5,
		},
		"self transfer is inert": {
			issueAlice: 5,
			src:        alice,
			dest:       alice,
			amount:     5,
			wantAlice:  5,
		},
		"self transfer requires funds": {
			issueAlice: 5,
			src:        alice,
			dest:       alice,
			amount:     6,
			wantErr:    errors.ErrAmount,
			wantAlice:  5,
		},
		"recipient overflow": {
			issueAlice: 10,
			issueBob:   math.MaxUint64,
			src:        alice,
			dest:       bob,
			amount:     1,
			wantErr:    errors.ErrOverflow,
			wantAlice:  10,
			wantBob:    math.MaxUint64,
		},
		"invalid source": {
			src:     gate.Address("short"),
			dest:    bob,
			amount:  1,
			wantErr: errors.ErrInput,
		},
		"invalid destination": {
			issueAlice: 10,
			src:        alice,
			dest:       nil,
			amount:     1,
			wantErr:    errors.ErrInput,
			wantAlice:  10,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.IssueCoins(db, alice, tc.issueAlice))
			assert.Nil(t, ctrl.IssueCoins(db, bob, tc.issueBob))

			err := ctrl.MoveCoins(db, tc.src, tc.dest, tc.amount)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}

			got, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantAlice, got)
			got, err = ctrl.Balance(db, bob)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantBob, got)
		})
	}
}

func TestIssueCoinsOverflow(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	addr := gatetest.NewCondition().Address()

	assert.Nil(t, ctrl.IssueCoins(db, addr, math.MaxUint64))
	assert.IsErr(t, errors.ErrOverflow, ctrl.IssueCoins(db, addr, 1))
	_, err := ctrl.Balance(db, gate.Address("bad"))
	assert.IsErr(t, errors.ErrInput, err)
}

func TestWalletQuery(t *testing.T) {
	db := store.MemStore()
	addr := gatetest.NewCondition().Address()
	assert.Nil(t, NewController().IssueCoins(db, addr, 77))

	qr := gate.NewQueryRouter()
	RegisterQuery(qr)
	res, err := qr.Handler("/wallets").Query(db, gate.KeyQueryMod, addr)
	assert.Nil(t, err)
	if len(res) != 1 {
		t.Fatalf("want one wallet, got %d", len(res))
	}
	var w Wallet
	assert.Nil(t, w.Unmarshal(res[0].Value))
	assert.Equal(t, uint64(77), w.Balance)
}
