package utils

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/store"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	cases := map[string]struct {
		handler  *gatetest.Handler
		deliver  bool
		wantErr  *errors.Error
		wantLogs []string
		noLogs   bool
	}{
		"deliver success is info": {
			handler:  &gatetest.Handler{DeliverResult: gate.DeliverResult{Log: "all good"}},
			deliver:  true,
			wantLogs: []string{"all good", "path=test/logging", "duration="},
		},
		"deliver failure is error": {
			handler:  &gatetest.Handler{DeliverErr: errors.ErrNotFound.New("no config")},
			deliver:  true,
			wantErr:  errors.ErrNotFound,
			wantLogs: []string{"no config", "path=test/logging"},
		},
		"check success is debug and filtered": {
			handler: &gatetest.Handler{CheckResult: gate.CheckResult{Log: "checked"}},
			noLogs:  true,
		},
		"check failure is error": {
			handler:  &gatetest.Handler{CheckErr: errors.ErrUnauthorized.New("who are you")},
			wantErr:  errors.ErrUnauthorized,
			wantLogs: []string{"who are you"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.NewFilter(log.NewTMLogger(&buf), log.AllowInfo())
			ctx := gate.WithLogger(context.Background(), logger)
			tx := &gatetest.Tx{Msg: &gatetest.Msg{RoutePath: "test/logging"}}
			db := store.MemStore()

			var err error
			if tc.deliver {
				_, err = NewLogging().Deliver(ctx, db, tx, tc.handler)
			} else {
				_, err = NewLogging().Check(ctx, db, tx, tc.handler)
			}
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}

			out := buf.String()
			if tc.noLogs && out != "" {
				t.Fatalf("unexpected log output: %s", out)
			}
			for _, want := range tc.wantLogs {
				if !strings.Contains(out, want) {
					t.Errorf("log %q does not contain %q", out, want)
				}
			}
		})
	}
}
