package client

import (
	"bytes"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/x/cash"
	"github.com/iov-one/gate/x/sigs"
	"github.com/iov-one/gate/x/threshold"
	"github.com/pkg/errors"
)

// WalletResponse is the wallet of an address.
type WalletResponse struct {
	Address gate.Address
	Wallet  cash.Wallet
	Height  int64
}

// GetWallet returns the wallet of addr, or (nil, nil) if the address never
// received any funds.
func (g *GateClient) GetWallet(addr gate.Address) (*WalletResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	out := WalletResponse{Address: addr}
	found, err := g.getModel("/wallets", cash.BucketName, addr, &out.Wallet, &out.Height)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

// UserResponse is the signer record of an address.
type UserResponse struct {
	Address  gate.Address
	UserData sigs.UserData
	Height   int64
}

// GetUser returns the public key and the next sequence of addr. It returns
// (nil, nil) for an address that never signed, whose sequence is zero.
func (g *GateClient) GetUser(addr gate.Address) (*UserResponse, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid address")
	}
	out := UserResponse{Address: addr}
	found, err := g.getModel("/auth", sigs.BucketName, addr, &out.UserData, &out.Height)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

// ConfigResponse is the threshold record of the chain.
type ConfigResponse struct {
	Address gate.Address
	Config  threshold.Config
	Height  int64
}

// GetConfig returns the threshold record, or (nil, nil) before it is
// created.
func (g *GateClient) GetConfig() (*ConfigResponse, error) {
	addr, _, err := threshold.ConfigAddress()
	if err != nil {
		return nil, err
	}
	out := ConfigResponse{Address: addr}
	found, err := g.getModel("/threshold", threshold.BucketName, addr, &out.Config, &out.Height)
	if err != nil || !found {
		return nil, err
	}
	return &out, nil
}

type unmarshaler interface {
	Unmarshal([]byte) error
}

// getModel queries the model stored under key and decodes it into dest.
// The height of the query is written to height.
func (g *GateClient) getModel(path, bucket string, key []byte, dest unmarshaler, height *int64) (bool, error) {
	res, err := g.AbciQuery(path, key)
	if err != nil {
		return false, err
	}
	*height = res.Height
	if len(res.Models) == 0 {
		return false, nil
	}
	model := res.Models[0]
	want := append([]byte(bucket+":"), key...)
	if !bytes.Equal(want, model.Key) {
		return false, errors.Errorf("queried %X, got %X", want, model.Key)
	}
	if err := dest.Unmarshal(model.Value); err != nil {
		return false, errors.Wrapf(err, "decode %s", bucket)
	}
	return true, nil
}
