package gatetest

import "github.com/iov-one/gate"

// Tx is a transaction carrying a single message. It cannot be serialized.
type Tx struct {
	Msg gate.Msg
	// Err, when set, is returned by GetMsg.
	Err error
}

var _ gate.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (gate.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("gatetest.Tx cannot be unmarshaled")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("gatetest.Tx cannot be marshaled")
}

// Msg is a message routed by RoutePath. Its serialized form is Serialized,
// whatever the content.
type Msg struct {
	RoutePath  string
	Serialized []byte
	// Err, when set, is returned by Validate, Marshal and Unmarshal.
	Err error
}

var _ gate.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
