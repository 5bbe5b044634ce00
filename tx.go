package gate

import (
	"regexp"

	"github.com/iov-one/gate/errors"
)

// IsValidPath reports whether a message path is well formed: one or more
// "/" separated segments of letters, digits, "_" and "-".
var IsValidPath = regexp.MustCompile(`^[a-zA-Z0-9_\-]+(/[a-zA-Z0-9_\-]+)*$`).MatchString

// Msg is the action a transaction asks for. Authentication data is kept in
// the transaction, a message only describes the state change.
type Msg interface {
	Persistent

	// Path routes the message to its handler. It must match
	// IsValidPath, several message types may share a path.
	Path() string

	// Validate checks the message on its own, without reading the state.
	Validate() error
}

// Marshaller is a value with a binary encoding. Marshal may fail for an
// invalid value.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent is a Marshaller that can be decoded back, in general through
// a pointer receiver.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is what clients submit to the chain: one message plus whatever the
// decorators of the application need, such as signatures.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message of tx, or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder decodes a transaction received from tendermint.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message of the transaction into given destination.
// The destination must be a pointer of the same type as the message carried
// by the transaction. The message is validated before it is returned.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message")
	}
	if err := assign(msg, destination); err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
