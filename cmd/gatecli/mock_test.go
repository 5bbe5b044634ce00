package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/app"
)

const mockChainID = "test-chain-ZIYjN0"

var logRequestFl = flag.Bool("logrequest", false, "Log all requests send to tendermint mock server.")

// mockState is the content served by the mock server. Query results are
// indexed by the query path.
type mockState struct {
	queries   map[string][]gate.Model
	deliverTx []byte
	submitted bool
}

// newTendermintServer returns a server answering the tendermint JSON-RPC
// calls used by the commands.
func newTendermintServer(t *testing.T, state *mockState) *httptest.Server {
	t.Helper()

	if state == nil {
		state = &mockState{}
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := ioutil.ReadAll(r.Body)
		if *logRequestFl {
			t.Logf("tendermint request: %s %s: %s", r.Method, r.URL.Path, string(b))
		}

		var req struct {
			Method string `json:"method"`
			Params struct {
				Path string `json:"path"`
			} `json:"params"`
		}
		if err := json.NewDecoder(bytes.NewReader(b)).Decode(&req); err != nil {
			t.Errorf("cannot decode request: %s", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var result string
		switch req.Method {
		case "genesis":
			result = fmt.Sprintf(`{"genesis": {"genesis_time": "2019-04-01T10:00:00Z", "chain_id": %q, "validators": [], "app_hash": ""}}`, mockChainID)
		case "abci_query":
			result = queryResult(t, state.queries[req.Params.Path])
		case "broadcast_tx_commit":
			state.submitted = true
			result = fmt.Sprintf(`{"check_tx": {}, "deliver_tx": {"data": %q}, "hash": "AB12", "height": "5"}`,
				base64.StdEncoding.EncodeToString(state.deliverTx))
		default:
			t.Errorf("unexpected method %q", req.Method)
			http.Error(w, "unexpected method", http.StatusNotImplemented)
			return
		}
		io.WriteString(w, `{"jsonrpc": "2.0", "id": "jsonrpc-client", "result": `+result+`}`)
	}))
}

func queryResult(t *testing.T, models []gate.Model) string {
	t.Helper()
	if len(models) == 0 {
		return `{"response": {"height": "4"}}`
	}
	keys, err := app.ResultsFromKeys(models).Marshal()
	if err != nil {
		t.Errorf("cannot marshal keys: %s", err)
	}
	values, err := app.ResultsFromValues(models).Marshal()
	if err != nil {
		t.Errorf("cannot marshal values: %s", err)
	}
	return fmt.Sprintf(`{"response": {"key": %q, "value": %q, "height": "4"}}`,
		base64.StdEncoding.EncodeToString(keys),
		base64.StdEncoding.EncodeToString(values))
}
