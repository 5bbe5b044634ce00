package gate

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/gate/crypto/bech32"
	"github.com/iov-one/gate/errors"
)

// AddressLength is the length of every address. Change it only in an init
// function, before any address is computed or stored.
var AddressLength = 20

// Address is the truncated sha256 digest of a condition.
type Address []byte

// NewAddress returns the address of data, nil for nil data.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return sum[:AddressLength]
}

func (a Address) Equals(other Address) bool {
	return bytes.Equal(a, other)
}

func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address(nil), a...)
}

// String returns the upper case hex of the address, or "(nil)".
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 returns the checksummed form of the address.
func (a Address) Bech32() (string, error) {
	return bech32.Encode(bech32.HRP, a)
}

// Validate fails for an address of the wrong length and for the all zero
// address.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: %v", a)
	}
	if bytes.Count(a, []byte{0}) == len(a) {
		return errors.Wrap(errors.ErrEmpty, "zero address")
	}
	return nil
}

// MarshalJSON encodes the address as upper case hex.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts every format of ParseAddress.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrapf(errors.ErrInput, "address json: %s", err)
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// addressDecoders are the formats of ParseAddress by prefix.
var addressDecoders = map[string]func(string) (Address, error){
	"hex": func(s string) (Address, error) {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "address hex: %s", err)
		}
		return raw, nil
	},
	"bech32": func(s string) (Address, error) {
		_, raw, err := bech32.Decode(s)
		return raw, err
	},
	"cond": func(s string) (Address, error) {
		var c Condition
		if err := c.parseString(s); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c.Address(), nil
	},
}

// ParseAddress reads an address written as "hex:<hex>",
// "bech32:<bech32>" or "cond:<condition>". Without a prefix the value is
// hex. An empty value is the nil address.
func ParseAddress(enc string) (Address, error) {
	format, value := "hex", enc
	if i := strings.IndexByte(enc, ':'); i >= 0 {
		format, value = enc[:i], enc[i+1:]
	}
	if value == "" {
		return nil, nil
	}
	decode, ok := addressDecoders[format]
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "unknown address format %q", format)
	}
	addr, err := decode(value)
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
