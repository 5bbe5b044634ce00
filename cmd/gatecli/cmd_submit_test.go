package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iov-one/gate/cmd/gated/app"
	"github.com/iov-one/gate/gatetest"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/x/threshold"
)

func TestCmdSubmitTransaction(t *testing.T) {
	cfg := threshold.Config{
		Authority:   gatetest.NewCondition().Address(),
		Source:      gatetest.NewCondition().Address(),
		Destination: gatetest.NewCondition().Address(),
		Threshold:   42,
	}
	raw, err := cfg.Marshal()
	assert.Nil(t, err)

	state := &mockState{deliverTx: raw}
	tm := newTendermintServer(t, state)
	defer tm.Close()

	var input bytes.Buffer
	err = cmdSetThreshold(nil, &input, []string{"-threshold", "42"})
	assert.Nil(t, err)

	var output bytes.Buffer
	assert.Nil(t, cmdSubmitTransaction(&input, &output, []string{"-tm", tm.URL}))
	if !state.submitted {
		t.Fatal("transaction not broadcasted")
	}

	var got threshold.Config
	assert.Nil(t, json.Unmarshal(output.Bytes(), &got))
	assert.Equal(t, cfg, got)
}

func TestExtractResponse(t *testing.T) {
	send, err := app.NewTx(&threshold.SendMsg{Amount: 1})
	assert.Nil(t, err)
	// transfers have no formatter
	pretty, err := extractResponse(send, []byte("whatever"))
	assert.Nil(t, err)
	assert.Equal(t, "", pretty)

	initTx, err := app.NewTx(&threshold.InitMsg{Threshold: 1})
	assert.Nil(t, err)
	if _, err := extractResponse(initTx, []byte{0xff}); err == nil {
		t.Fatal("malformed response accepted")
	}
}
