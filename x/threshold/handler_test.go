package threshold

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/store"
	"github.com/iov-one/gate/x/cash"
	"github.com/iov-one/gate/x/utils"
)

// fixture holds an initialized config with a funded source.
type fixture struct {
	db          gate.CacheableKVStore
	bank        cash.BaseController
	cfgAddr     gate.Address
	authority   gate.Condition
	source      gate.Condition
	destination gate.Condition
}

func newFixture(t testing.TB, threshold, balance uint64) *fixture {
	t.Helper()

	f := &fixture{
		db:          store.MemStore(),
		bank:        cash.NewController(),
		authority:   gatetest.NewCondition(),
		source:      gatetest.NewCondition(),
		destination: gatetest.NewCondition(),
	}
	addr, _, err := ConfigAddress()
	assert.Nil(t, err)
	f.cfgAddr = addr

	h := NewInitHandler(&gatetest.Auth{Signer: f.authority}, NewBucket())
	tx := &gatetest.Tx{Msg: &InitMsg{
		Source:      f.source.Address(),
		Destination: f.destination.Address(),
		Threshold:   threshold,
	}}
	_, err = h.Deliver(context.Background(), f.db, tx)
	assert.Nil(t, err)

	assert.Nil(t, f.bank.IssueCoins(f.db, f.source.Address(), balance))
	return f
}

func (f *fixture) config(t testing.TB) *Config {
	t.Helper()
	cfg, err := loadConfig(f.db, NewBucket(), f.cfgAddr)
	assert.Nil(t, err)
	return cfg
}

func (f *fixture) balance(t testing.TB, c gate.Condition) uint64 {
	t.Helper()
	b, err := f.bank.Balance(f.db, c.Address())
	assert.Nil(t, err)
	return b
}

func TestInitHandler(t *testing.T) {
	authority := gatetest.NewCondition()
	source := gatetest.NewCondition().Address()
	destination := gatetest.NewCondition().Address()

	cases := map[string]struct {
		signers []gate.Condition
		msg     gate.Msg
		wantErr *errors.Error
	}{
		"main signer becomes the authority": {
			signers: []gate.Condition{authority, gatetest.NewCondition()},
			msg:     &InitMsg{Source: source, Destination: destination, Threshold: 100},
		},
		"zero threshold is legal": {
			signers: []gate.Condition{authority},
			msg:     &InitMsg{Source: source, Destination: destination},
		},
		"source may equal destination": {
			signers: []gate.Condition{authority},
			msg:     &InitMsg{Source: source, Destination: source, Threshold: 1},
		},
		"no signer": {
			msg:     &InitMsg{Source: source, Destination: destination, Threshold: 100},
			wantErr: errors.ErrUnauthorized,
		},
		"invalid message": {
			signers: []gate.Condition{authority},
			msg:     &InitMsg{Source: source},
			wantErr: errors.ErrInput,
		},
		"wrong message type": {
			signers: []gate.Condition{authority},
			msg:     &SendMsg{},
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			h := NewInitHandler(&gatetest.Auth{Signers: tc.signers}, NewBucket())
			tx := &gatetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			if _, err := h.Check(context.Background(), cache, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			res, err := h.Deliver(context.Background(), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}

			var created Config
			assert.Nil(t, created.Unmarshal(res.Data))
			assert.Equal(t, authority.Address(), created.Authority)

			_, tag, err := ConfigAddress()
			assert.Nil(t, err)
			stored, err := NewBucket().Load(db, tag)
			assert.Nil(t, err)
			assert.Equal(t, &created, stored)
		})
	}
}

func TestInitHandlerIsNotIdempotent(t *testing.T) {
	f := newFixture(t, 100, 0)
	before := f.config(t)

	h := NewInitHandler(&gatetest.Auth{Signer: gatetest.NewCondition()}, NewBucket())
	tx := &gatetest.Tx{Msg: &InitMsg{
		Source:      gatetest.NewCondition().Address(),
		Destination: gatetest.NewCondition().Address(),
		Threshold:   1,
	}}
	_, err := h.Check(context.Background(), f.db, tx)
	assert.IsErr(t, errors.ErrDuplicate, err)
	_, err = h.Deliver(context.Background(), f.db, tx)
	assert.IsErr(t, errors.ErrDuplicate, err)

	assert.Equal(t, before, f.config(t))
}

func TestSendHandler(t *testing.T) {
	const threshold = 100

	cases := map[string]struct {
		signer func(*fixture) gate.Condition
		msg    func(*fixture) *SendMsg

		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		wantSource     uint64
		wantDest       uint64
	}{
		"amount equal to threshold": {
			signer:     func(f *fixture) gate.Condition { return f.source },
			msg:        func(f *fixture) *SendMsg { return sendMsg(f, threshold) },
			wantSource: 1000 - threshold,
			wantDest:   threshold,
		},
		"amount above threshold": {
			signer:     func(f *fixture) gate.Condition { return f.source },
			msg:        func(f *fixture) *SendMsg { return sendMsg(f, threshold+1) },
			wantSource: 1000 - threshold - 1,
			wantDest:   threshold + 1,
		},
		"amount below threshold": {
			signer:         func(f *fixture) gate.Condition { return f.source },
			msg:            func(f *fixture) *SendMsg { return sendMsg(f, threshold-1) },
			wantCheckErr:   ErrBelowThreshold,
			wantDeliverErr: ErrBelowThreshold,
			wantSource:     1000,
		},
		"source did not sign": {
			signer:         func(f *fixture) gate.Condition { return gatetest.NewCondition() },
			msg:            func(f *fixture) *SendMsg { return sendMsg(f, threshold) },
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantSource:     1000,
		},
		"signer claims to be the source": {
			signer: func(f *fixture) gate.Condition { return f.authority },
			msg: func(f *fixture) *SendMsg {
				m := sendMsg(f, threshold)
				m.Source = f.authority.Address()
				return m
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantSource:     1000,
		},
		"authority cannot send": {
			signer:         func(f *fixture) gate.Condition { return f.authority },
			msg:            func(f *fixture) *SendMsg { return sendMsg(f, 5000) },
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantSource:     1000,
		},
		"recipient is not the destination": {
			signer: func(f *fixture) gate.Condition { return f.source },
			msg: func(f *fixture) *SendMsg {
				m := sendMsg(f, threshold)
				m.Destination = gatetest.NewCondition().Address()
				return m
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
			wantSource:     1000,
		},
		"wrong config address": {
			signer: func(f *fixture) gate.Condition { return f.source },
			msg: func(f *fixture) *SendMsg {
				m := sendMsg(f, threshold)
				m.Config = gatetest.NewCondition().Address()
				return m
			},
			wantCheckErr:   ErrAddressMismatch,
			wantDeliverErr: ErrAddressMismatch,
			wantSource:     1000,
		},
		"insufficient balance": {
			signer:         func(f *fixture) gate.Condition { return f.source },
			msg:            func(f *fixture) *SendMsg { return sendMsg(f, 1001) },
			wantDeliverErr: ErrTransferFailed,
			wantSource:     1000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, threshold, 1000)
			before := f.config(t)

			h := NewSendHandler(&gatetest.Auth{Signer: tc.signer(f)}, NewBucket(), f.bank)
			tx := &gatetest.Tx{Msg: tc.msg(f)}

			cache := f.db.CacheWrap()
			if _, err := h.Check(context.Background(), cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			if _, err := h.Deliver(context.Background(), f.db, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			assert.Equal(t, tc.wantSource, f.balance(t, f.source))
			assert.Equal(t, tc.wantDest, f.balance(t, f.destination))
			assert.Equal(t, before, f.config(t))
		})
	}
}

func sendMsg(f *fixture, amount uint64) *SendMsg {
	return &SendMsg{
		Config:      f.cfgAddr,
		Source:      f.source.Address(),
		Destination: f.destination.Address(),
		Amount:      amount,
	}
}

func TestSendMissingConfig(t *testing.T) {
	source := gatetest.NewCondition()
	addr, _, err := ConfigAddress()
	assert.Nil(t, err)

	h := NewSendHandler(&gatetest.Auth{Signer: source}, NewBucket(), cash.NewController())
	tx := &gatetest.Tx{Msg: &SendMsg{
		Config:      addr,
		Source:      source.Address(),
		Destination: gatetest.NewCondition().Address(),
		Amount:      1,
	}}
	_, err = h.Deliver(context.Background(), store.MemStore(), tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestSendTransferFailedKeepsCause(t *testing.T) {
	f := newFixture(t, 10, 5)
	h := NewSendHandler(&gatetest.Auth{Signer: f.source}, NewBucket(), f.bank)

	_, err := h.Deliver(context.Background(), f.db, &gatetest.Tx{Msg: sendMsg(f, 10)})
	assert.IsErr(t, ErrTransferFailed, err)
	assert.IsErr(t, errors.ErrAmount, err)
	if !strings.Contains(err.Error(), "insufficient funds") {
		t.Fatalf("ledger error lost: %s", err)
	}
	code, _ := errors.ABCIInfo(err, false)
	assert.Equal(t, ErrTransferFailed.ABCICode(), code)
	if !strings.Contains(fmt.Sprintf("%+v", err), "MoveCoins") {
		t.Fatalf("ledger stack trace lost: %+v", err)
	}
}

// partialBank writes to the store before failing.
type partialBank struct{}

func (partialBank) MoveCoins(db gate.KVStore, src, dest gate.Address, amount uint64) error {
	if err := db.Set([]byte("partial"), []byte{1}); err != nil {
		return err
	}
	return errors.ErrAmount.New("ledger down")
}

func TestSendFailureIsAtomic(t *testing.T) {
	f := newFixture(t, 10, 100)
	h := gatetest.Decorate(
		NewSendHandler(&gatetest.Auth{Signer: f.source}, NewBucket(), partialBank{}),
		utils.NewSavepoint().OnDeliver(),
	)

	_, err := h.Deliver(context.Background(), f.db, &gatetest.Tx{Msg: sendMsg(f, 10)})
	assert.IsErr(t, ErrTransferFailed, err)

	has, err := f.db.Has([]byte("partial"))
	assert.Nil(t, err)
	if has {
		t.Fatal("partial write of a failed transfer is visible")
	}
	assert.Equal(t, uint64(100), f.balance(t, f.source))
}

func TestUpdateThresholdHandler(t *testing.T) {
	cases := map[string]struct {
		signer       func(*fixture) gate.Condition
		newThreshold uint64
		wantErr      *errors.Error
		want         uint64
	}{
		"authority lowers the threshold": {
			signer:       func(f *fixture) gate.Condition { return f.authority },
			newThreshold: 10,
			want:         10,
		},
		"authority sets zero": {
			signer:       func(f *fixture) gate.Condition { return f.authority },
			newThreshold: 0,
			want:         0,
		},
		"source is not the authority": {
			signer:       func(f *fixture) gate.Condition { return f.source },
			newThreshold: 1,
			wantErr:      errors.ErrUnauthorized,
			want:         100,
		},
		"stranger is not the authority": {
			signer:       func(f *fixture) gate.Condition { return gatetest.NewCondition() },
			newThreshold: 1,
			wantErr:      errors.ErrUnauthorized,
			want:         100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, 100, 0)
			h := NewUpdateThresholdHandler(&gatetest.Auth{Signer: tc.signer(f)}, NewBucket())
			tx := &gatetest.Tx{Msg: &UpdateThresholdMsg{Config: f.cfgAddr, Threshold: tc.newThreshold}}

			if _, err := h.Check(context.Background(), f.db.CacheWrap(), tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			if _, err := h.Deliver(context.Background(), f.db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			cfg := f.config(t)
			assert.Equal(t, tc.want, cfg.Threshold)
			assert.Equal(t, f.source.Address(), cfg.Source)
			assert.Equal(t, f.authority.Address(), cfg.Authority)
		})
	}
}

func TestUpdateAddressesHandler(t *testing.T) {
	newSource := gatetest.NewCondition().Address()
	newDest := gatetest.NewCondition().Address()

	cases := map[string]struct {
		signer  func(*fixture) gate.Condition
		source  gate.Address
		dest    gate.Address
		wantErr *errors.Error
		changed bool
	}{
		"authority replaces both": {
			signer:  func(f *fixture) gate.Condition { return f.authority },
			source:  newSource,
			dest:    newDest,
			changed: true,
		},
		"authority sets a self transfer": {
			signer:  func(f *fixture) gate.Condition { return f.authority },
			source:  newSource,
			dest:    newSource,
			changed: true,
		},
		"source is not the authority": {
			signer:  func(f *fixture) gate.Condition { return f.source },
			source:  newSource,
			dest:    newDest,
			wantErr: errors.ErrUnauthorized,
		},
		"destination is not the authority": {
			signer:  func(f *fixture) gate.Condition { return f.destination },
			source:  newSource,
			dest:    newDest,
			wantErr: errors.ErrUnauthorized,
		},
		"only one address given": {
			signer:  func(f *fixture) gate.Condition { return f.authority },
			source:  newSource,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, 100, 0)
			before := f.config(t)

			h := NewUpdateAddressesHandler(&gatetest.Auth{Signer: tc.signer(f)}, NewBucket())
			tx := &gatetest.Tx{Msg: &UpdateAddressesMsg{Config: f.cfgAddr, Source: tc.source, Destination: tc.dest}}

			if _, err := h.Deliver(context.Background(), f.db, tx); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			cfg := f.config(t)
			if !tc.changed {
				assert.Equal(t, before, cfg)
				return
			}
			assert.Equal(t, tc.source, cfg.Source)
			assert.Equal(t, tc.dest, cfg.Destination)
			assert.Equal(t, before.Threshold, cfg.Threshold)
			assert.Equal(t, before.Authority, cfg.Authority)
		})
	}
}

func TestSendAfterAddressUpdate(t *testing.T) {
	f := newFixture(t, 10, 0)
	d := gatetest.NewCondition()
	e := gatetest.NewCondition()
	assert.Nil(t, f.bank.IssueCoins(f.db, d.Address(), 50))

	upd := NewUpdateAddressesHandler(&gatetest.Auth{Signer: f.authority}, NewBucket())
	_, err := upd.Deliver(context.Background(), f.db, &gatetest.Tx{Msg: &UpdateAddressesMsg{
		Config:      f.cfgAddr,
		Source:      d.Address(),
		Destination: e.Address(),
	}})
	assert.Nil(t, err)

	// The old source is not authorized anymore, even towards the old
	// destination.
	old := NewSendHandler(&gatetest.Auth{Signer: f.source}, NewBucket(), f.bank)
	_, err = old.Deliver(context.Background(), f.db, &gatetest.Tx{Msg: sendMsg(f, 10)})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	send := NewSendHandler(&gatetest.Auth{Signer: d}, NewBucket(), f.bank)
	_, err = send.Deliver(context.Background(), f.db, &gatetest.Tx{Msg: &SendMsg{
		Config:      f.cfgAddr,
		Source:      d.Address(),
		Destination: e.Address(),
		Amount:      20,
	}})
	assert.Nil(t, err)
	assert.Equal(t, uint64(30), f.balance(t, d))
	assert.Equal(t, uint64(20), f.balance(t, e))
}
