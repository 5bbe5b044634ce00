/*
Package client talks to a gated node over the tendermint rpc. It decodes
the query results of the gated buckets and broadcasts signed transactions.
*/
package client

import (
	"fmt"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/app"
	"github.com/pkg/errors"
	nm "github.com/tendermint/tendermint/node"
	"github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

type GenesisDoc = tmtypes.GenesisDoc

// Client is the gated api of a node.
type Client interface {
	TendermintClient() client.Client
	ChainID() (string, error)
	GetUser(addr gate.Address) (*UserResponse, error)
	GetWallet(addr gate.Address) (*WalletResponse, error)
	GetConfig() (*ConfigResponse, error)
	BroadcastTx(tx gate.Tx) BroadcastTxResponse
	AbciQuery(path string, data []byte) (AbciResponse, error)
}

// GateClient implements Client on top of a tendermint rpc connection.
type GateClient struct {
	conn client.Client
}

var _ Client = (*GateClient)(nil)

func NewClient(conn client.Client) *GateClient {
	return &GateClient{conn: conn}
}

// NewLocalConnection connects to a node running in the same process.
func NewLocalConnection(node *nm.Node) client.Client {
	return client.NewLocal(node)
}

// NewHTTPConnection connects to the rpc endpoint of a remote node, for
// example "http://localhost:26657".
func NewHTTPConnection(remote string) client.Client {
	return client.NewHTTP(remote, "/websocket")
}

func (g *GateClient) TendermintClient() client.Client {
	return g.conn
}

// Genesis returns the genesis document of the node.
func (g *GateClient) Genesis() (*GenesisDoc, error) {
	res, err := g.conn.Genesis()
	if err != nil {
		return nil, errors.Wrap(err, "genesis")
	}
	return res.Genesis, nil
}

// ChainID returns the chain id of the genesis document.
func (g *GateClient) ChainID() (string, error) {
	doc, err := g.Genesis()
	if err != nil {
		return "", err
	}
	return doc.ChainID, nil
}

// Height returns the height of the latest block of the node.
func (g *GateClient) Height() (int64, error) {
	status, err := g.conn.Status()
	if err != nil {
		return -1, errors.Wrap(err, "status")
	}
	return status.SyncInfo.LatestBlockHeight, nil
}

// AbciResponse holds the models returned by a query and the height the
// query ran at. Models is empty when nothing matched.
type AbciResponse struct {
	Models []gate.Model
	Height int64
}

// AbciQuery runs an abci query and decodes the result sets of keys and
// values it returns. A failed query is returned as an error carrying its
// code and log.
func (g *GateClient) AbciQuery(path string, data []byte) (AbciResponse, error) {
	res, err := g.conn.ABCIQuery(path, data)
	if err != nil {
		return AbciResponse{}, errors.Wrapf(err, "query %s", path)
	}
	q := res.Response
	if q.IsErr() {
		return AbciResponse{}, fmt.Errorf("query %s: (%d) %s", path, q.Code, q.Log)
	}
	out := AbciResponse{Height: q.Height}
	if len(q.Key) == 0 {
		return out, nil
	}
	var keys, values app.ResultSet
	if err := keys.Unmarshal(q.Key); err != nil {
		return out, errors.Wrap(err, "result keys")
	}
	if err := values.Unmarshal(q.Value); err != nil {
		return out, errors.Wrap(err, "result values")
	}
	out.Models, err = app.JoinResults(&keys, &values)
	return out, err
}

// BroadcastTxResponse is the outcome of BroadcastTx. Error is set when the
// transaction could not be sent. Response is set once the node answered.
type BroadcastTxResponse struct {
	Error    error
	Response *ctypes.ResultBroadcastTxCommit
}

// IsError returns why the transaction did not make it into a block, or nil
// if it was delivered.
func (b BroadcastTxResponse) IsError() error {
	switch {
	case b.Error != nil:
		return b.Error
	case b.Response.CheckTx.IsErr():
		return fmt.Errorf("CheckTx error: (%d) %s", b.Response.CheckTx.Code, b.Response.CheckTx.Log)
	case b.Response.DeliverTx.IsErr():
		return fmt.Errorf("DeliverTx error: (%d) %s", b.Response.DeliverTx.Code, b.Response.DeliverTx.Log)
	}
	return nil
}

// BroadcastTx sends the transaction and waits until it is committed in a
// block, or rejected.
func (g *GateClient) BroadcastTx(tx gate.Tx) BroadcastTxResponse {
	raw, err := tx.Marshal()
	if err != nil {
		return BroadcastTxResponse{Error: errors.Wrap(err, "marshal tx")}
	}
	res, err := g.conn.BroadcastTxCommit(raw)
	return BroadcastTxResponse{Error: err, Response: res}
}
