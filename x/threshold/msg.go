package threshold

import (
	"github.com/iov-one/gate"
	"github.com/iov-one/gate/errors"
)

const (
	pathInitMsg            = "threshold/init"
	pathSendMsg            = "threshold/send"
	pathUpdateThresholdMsg = "threshold/update_threshold"
	pathUpdateAddressesMsg = "threshold/update_addresses"

	maxMemoSize int = 128
)

var _ gate.Msg = (*InitMsg)(nil)
var _ gate.Msg = (*SendMsg)(nil)
var _ gate.Msg = (*UpdateThresholdMsg)(nil)
var _ gate.Msg = (*UpdateAddressesMsg)(nil)

//--------- Path routing --------

// Path fulfills gate.Msg interface to allow routing
func (InitMsg) Path() string {
	return pathInitMsg
}

// Path fulfills gate.Msg interface to allow routing
func (SendMsg) Path() string {
	return pathSendMsg
}

// Path fulfills gate.Msg interface to allow routing
func (UpdateThresholdMsg) Path() string {
	return pathUpdateThresholdMsg
}

// Path fulfills gate.Msg interface to allow routing
func (UpdateAddressesMsg) Path() string {
	return pathUpdateAddressesMsg
}

//--------- Validation --------

// Validate makes sure both parties are set.
func (m *InitMsg) Validate() error {
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// Validate makes sure that this is sensible. The amount is checked against
// the threshold by the handler.
func (m *SendMsg) Validate() error {
	if err := m.Config.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if len(m.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo too long: %d > %d", len(m.Memo), maxMemoSize)
	}
	return nil
}

// Validate only requires the config address. Any threshold is accepted.
func (m *UpdateThresholdMsg) Validate() error {
	if err := m.Config.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// Validate makes sure that both new parties are set. They may be equal.
func (m *UpdateAddressesMsg) Validate() error {
	if err := m.Config.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}
