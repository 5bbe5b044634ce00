package x

import (
	"context"
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/gatetest/assert"
)

func TestAuth(t *testing.T) {
	a := gatetest.NewCondition()
	b := gatetest.NewCondition()
	c := gatetest.NewCondition()

	ctx1 := &gatetest.CtxAuth{Key: "foo"}
	ctx2 := &gatetest.CtxAuth{Key: "bar"}

	cases := map[string]struct {
		ctx          gate.Context
		auth         Authenticator
		mainSigner   gate.Condition
		wantInCtx    gate.Condition
		wantNotInCtx gate.Condition
		wantAll      []gate.Condition
	}{
		"empty context": {
			ctx:          context.Background(),
			auth:         &gatetest.Auth{},
			wantNotInCtx: b,
		},
		"signer a": {
			ctx:          context.Background(),
			auth:         &gatetest.Auth{Signer: a},
			mainSigner:   a,
			wantInCtx:    a,
			wantNotInCtx: b,
			wantAll:      []gate.Condition{a},
		},
		"chained keeps the order": {
			ctx: context.Background(),
			auth: ChainAuth(
				&gatetest.Auth{Signer: b},
				&gatetest.Auth{Signer: a}),
			mainSigner:   b,
			wantInCtx:    a,
			wantNotInCtx: c,
			wantAll:      []gate.Condition{b, a},
		},
		"chained with an empty authenticator": {
			ctx: ctx1.SetConditions(context.Background(), a, b),
			auth: ChainAuth(
				&gatetest.Auth{},
				ctx1),
			mainSigner:   a,
			wantInCtx:    b,
			wantNotInCtx: c,
			wantAll:      []gate.Condition{a, b},
		},
		"ctxAuth with different key sees nothing": {
			ctx:          ctx1.SetConditions(context.Background(), a, b),
			auth:         ctx2,
			wantNotInCtx: a,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
			assert.Equal(t, tc.wantAll, tc.auth.GetConditions(tc.ctx))

			if tc.wantInCtx != nil {
				assert.Nil(t, RequireSigner(tc.ctx, tc.auth, tc.wantInCtx.Address(), "party"))
			}
			err := RequireSigner(tc.ctx, tc.auth, tc.wantNotInCtx.Address(), "party")
			assert.IsErr(t, errors.ErrUnauthorized, err)
		})
	}
}

func TestRequireSignerEmptyAddress(t *testing.T) {
	auth := &gatetest.Auth{Signer: gatetest.NewCondition()}
	err := RequireSigner(context.Background(), auth, nil, "authority")
	assert.IsErr(t, errors.ErrUnauthorized, err)
}
