package threshold

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/x"
	"github.com/iov-one/gate/x/cash"
)

const (
	// pay the record allocation up-front
	initConfigCost      int64 = 300
	sendCost            int64 = 100
	updateThresholdCost int64 = 50
	updateAddressesCost int64 = 50
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r gate.Registry, auth x.Authenticator, bank cash.CoinMover) {
	store := NewBucket()
	r.Handle(&InitMsg{}, NewInitHandler(auth, store))
	r.Handle(&SendMsg{}, NewSendHandler(auth, store, bank))
	r.Handle(&UpdateThresholdMsg{}, NewUpdateThresholdHandler(auth, store))
	r.Handle(&UpdateAddressesMsg{}, NewUpdateAddressesHandler(auth, store))
}

// RegisterQuery will register the config bucket as "/threshold"
func RegisterQuery(qr gate.QueryRouter) {
	NewBucket().Register("threshold", qr)
}

// loadConfig verifies that the claimed address is the canonical one and
// loads the record stored there.
func loadConfig(db gate.ReadOnlyKVStore, store ConfigStore, claimed gate.Address) (*Config, error) {
	addr, tag, err := ConfigAddress()
	if err != nil {
		return nil, err
	}
	if !claimed.Equals(addr) {
		return nil, errors.Wrapf(ErrAddressMismatch, "%s is not the config address", claimed)
	}
	return store.Load(db, tag)
}

// InitHandler creates the configuration record.
type InitHandler struct {
	auth  x.Authenticator
	store ConfigStore
}

var _ gate.Handler = InitHandler{}

// NewInitHandler returns a handler creating the record in given store.
func NewInitHandler(auth x.Authenticator, store ConfigStore) InitHandler {
	return InitHandler{auth: auth, store: store}
}

// Check verifies the record can be created and returns the cost of doing so.
func (h InitHandler) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &gate.CheckResult{GasAllocated: initConfigCost}, nil
}

// Deliver stores the record with the main signer as the authority.
func (h InitHandler) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	cfg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.store.Create(db, cfg); err != nil {
		return nil, errors.Wrap(err, "cannot create config")
	}

	gate.GetLogger(ctx).Info("threshold config created",
		"authority", cfg.Authority,
		"source", cfg.Source,
		"destination", cfg.Destination,
		"threshold", cfg.Threshold)
	return configResult(cfg)
}

func (h InitHandler) validate(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*Config, error) {
	var msg InitMsg
	if err := gate.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	_, tag, err := ConfigAddress()
	if err != nil {
		return nil, err
	}
	switch _, err := h.store.Load(db, tag); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "config already initialized")
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	cfg := &Config{
		Authority:     signer.Address(),
		Source:        msg.Source,
		Destination:   msg.Destination,
		Threshold:     msg.Threshold,
		DerivationTag: uint32(tag),
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// SendHandler moves value from the configured source to the configured
// destination when the amount is not below the threshold.
type SendHandler struct {
	auth  x.Authenticator
	store ConfigStore
	bank  cash.CoinMover
}

var _ gate.Handler = SendHandler{}

// NewSendHandler returns a handler moving value with given bank.
func NewSendHandler(auth x.Authenticator, store ConfigStore, bank cash.CoinMover) SendHandler {
	return SendHandler{auth: auth, store: store, bank: bank}
}

// Check verifies all preconditions but does not move any value.
func (h SendHandler) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &gate.CheckResult{GasAllocated: sendCost}, nil
}

// Deliver moves exactly the requested amount. The configuration is not
// modified.
func (h SendHandler) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	msg, cfg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.bank.MoveCoins(db, cfg.Source, cfg.Destination, msg.Amount); err != nil {
		return nil, ErrTransferFailed.WithCause(err)
	}

	gate.GetLogger(ctx).Info("threshold transfer",
		"source", cfg.Source,
		"destination", cfg.Destination,
		"amount", msg.Amount,
		"memo", msg.Memo)
	return &gate.DeliverResult{}, nil
}

// validate checks, in order, the record, the source signature, the
// recipient and the threshold.
func (h SendHandler) validate(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*SendMsg, *Config, error) {
	var msg SendMsg
	if err := gate.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	cfg, err := loadConfig(db, h.store, msg.Config)
	if err != nil {
		return nil, nil, err
	}

	if !msg.Source.Equals(cfg.Source) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the configured source")
	}
	if err := x.RequireSigner(ctx, h.auth, cfg.Source, "source"); err != nil {
		return nil, nil, err
	}
	if !msg.Destination.Equals(cfg.Destination) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "not the configured destination")
	}
	if msg.Amount < cfg.Threshold {
		return nil, nil, errors.Wrapf(ErrBelowThreshold, "%d < %d", msg.Amount, cfg.Threshold)
	}
	return &msg, cfg, nil
}

// UpdateThresholdHandler lets the authority replace the threshold.
type UpdateThresholdHandler struct {
	auth  x.Authenticator
	store ConfigStore
}

var _ gate.Handler = UpdateThresholdHandler{}

// NewUpdateThresholdHandler returns a handler updating records in given store.
func NewUpdateThresholdHandler(auth x.Authenticator, store ConfigStore) UpdateThresholdHandler {
	return UpdateThresholdHandler{auth: auth, store: store}
}

func (h UpdateThresholdHandler) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &gate.CheckResult{GasAllocated: updateThresholdCost}, nil
}

func (h UpdateThresholdHandler) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	msg, cfg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	old := cfg.Threshold
	cfg.Threshold = msg.Threshold
	if err := h.store.Save(db, cfg); err != nil {
		return nil, errors.Wrap(err, "cannot save config")
	}

	gate.GetLogger(ctx).Info("threshold updated", "old", old, "new", cfg.Threshold)
	return configResult(cfg)
}

func (h UpdateThresholdHandler) validate(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*UpdateThresholdMsg, *Config, error) {
	var msg UpdateThresholdMsg
	if err := gate.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	cfg, err := loadConfig(db, h.store, msg.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := x.RequireSigner(ctx, h.auth, cfg.Authority, "authority"); err != nil {
		return nil, nil, err
	}
	return &msg, cfg, nil
}

// UpdateAddressesHandler lets the authority replace the source and the
// destination in one step.
type UpdateAddressesHandler struct {
	auth  x.Authenticator
	store ConfigStore
}

var _ gate.Handler = UpdateAddressesHandler{}

// NewUpdateAddressesHandler returns a handler updating records in given store.
func NewUpdateAddressesHandler(auth x.Authenticator, store ConfigStore) UpdateAddressesHandler {
	return UpdateAddressesHandler{auth: auth, store: store}
}

func (h UpdateAddressesHandler) Check(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &gate.CheckResult{GasAllocated: updateAddressesCost}, nil
}

func (h UpdateAddressesHandler) Deliver(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*gate.DeliverResult, error) {
	msg, cfg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	cfg.Source = msg.Source
	cfg.Destination = msg.Destination
	if err := h.store.Save(db, cfg); err != nil {
		return nil, errors.Wrap(err, "cannot save config")
	}

	gate.GetLogger(ctx).Info("threshold addresses updated",
		"source", cfg.Source,
		"destination", cfg.Destination)
	return configResult(cfg)
}

func (h UpdateAddressesHandler) validate(ctx gate.Context, db gate.KVStore, tx gate.Tx) (*UpdateAddressesMsg, *Config, error) {
	var msg UpdateAddressesMsg
	if err := gate.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	cfg, err := loadConfig(db, h.store, msg.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := x.RequireSigner(ctx, h.auth, cfg.Authority, "authority"); err != nil {
		return nil, nil, err
	}
	return &msg, cfg, nil
}

func configResult(cfg *Config) (*gate.DeliverResult, error) {
	raw, err := cfg.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal config")
	}
	return &gate.DeliverResult{Data: raw}, nil
}
