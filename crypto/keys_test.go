package crypto

import (
	"bytes"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest/assert"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()

	msg := []byte("foobar")
	msg2 := []byte("dingbooms")

	sig, err := private.Sign(msg)
	assert.Nil(t, err)
	sig2, err := private.Sign(msg2)
	assert.Nil(t, err)
	assert.Nil(t, sig.Validate())

	bz, err := sig.Marshal()
	assert.Nil(t, err)
	bz2, err := sig2.Marshal()
	assert.Nil(t, err)

	if bytes.Equal(bz, bz2) {
		t.Fatal("marshaling different signatures produce the same binary representation")
	}

	if !public.Verify(msg, sig) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if !public.Verify(msg2, sig2) {
		t.Fatal("cannot verify a message signed with this public key")
	}

	if public.Verify(msg, sig2) {
		t.Fatal("verified message signature of the wrong message")
	}
	if public.Verify(msg2, sig) {
		t.Fatal("verified message signature of the wrong message")
	}

	if public.Verify(msg, &Signature{}) {
		t.Fatal("verified an empty signature of a message")
	}
	if public.Verify(msg, nil) {
		t.Fatal("verified a nil signature of a message")
	}

	var read Signature
	assert.Nil(t, read.Unmarshal(bz))
	if !public.Verify(msg, &read) {
		t.Fatal("cannot verify a deserialized signature")
	}
}

func TestEd25519Address(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()
	empty := PublicKey{}

	assert.Nil(t, pub.Condition().Validate())
	assert.Nil(t, pub2.Condition().Validate())
	if bytes.Equal(pub.Condition(), pub2.Condition()) {
		t.Fatal("different public keys produce the same condition")
	}
	assert.Nil(t, empty.Condition())
	assert.Nil(t, empty.Address())
	assert.Nil(t, pub.Address().Validate())

	bz, err := pub.Marshal()
	assert.Nil(t, err)
	var read PublicKey
	err = read.Unmarshal(bz)
	assert.Nil(t, err)
	assert.Equal(t, read.Condition(), pub.Condition())
	assert.Nil(t, read.Validate())
	assert.IsErr(t, errors.ErrInput, empty.Validate())
}

func TestPrivateKeySerialization(t *testing.T) {
	priv := GenPrivKeyEd25519()
	bz, err := priv.Marshal()
	assert.Nil(t, err)

	var read PrivateKey
	assert.Nil(t, read.Unmarshal(bz))
	assert.Equal(t, priv.Ed25519, read.Ed25519)
	assert.Equal(t, priv.PublicKey(), read.PublicKey())

	var empty PrivateKey
	_, err = empty.Sign([]byte("msg"))
	assert.IsErr(t, errors.ErrInput, err)
	if empty.PublicKey() != nil {
		t.Fatal("empty private key must not have a public key")
	}

	// wrong wire type for the key field
	if err := read.Unmarshal([]byte{0x08, 0x01}); err == nil {
		t.Fatal("decoded a varint into the key bytes")
	}
}

func TestKeysProtobufEncoding(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()

	bz, err := proto.Marshal(pub)
	assert.Nil(t, err)
	raw, err := pub.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, raw, bz)

	// field 1, length delimited, followed by the raw key
	assert.Equal(t, byte(0x0a), bz[0])
	assert.Equal(t, byte(len(pub.Ed25519)), bz[1])
	assert.Equal(t, pub.Ed25519, bz[2:])

	var read PublicKey
	assert.Nil(t, proto.Unmarshal(bz, &read))
	assert.Equal(t, pub.Address(), read.Address())

	// unknown fields are skipped
	withExtra := append([]byte{0x10, 0x07}, bz...)
	var extra PublicKey
	assert.Nil(t, extra.Unmarshal(withExtra))
	assert.Equal(t, pub.Ed25519, extra.GetEd25519())
}

func TestPrivKeyEd25519FromSeed(t *testing.T) {
	cases := map[string]struct {
		seed     []byte
		expected []byte
		wantErr  *errors.Error
	}{
		"success 1": {
			seed:     []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			expected: []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 59, 106, 39, 188, 206, 182, 164, 45, 98, 163, 168, 208, 42, 111, 13, 115, 101, 50, 21, 119, 29, 226, 67, 166, 58, 192, 72, 161, 139, 89, 218, 41},
		},
		"success 2": {
			seed:     []byte{31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31},
			expected: []byte{31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 31, 67, 4, 107, 254, 64, 146, 179, 233, 73, 148, 234, 218, 21, 220, 194, 13, 138, 170, 7, 182, 88, 253, 57, 84, 235, 142, 14, 251, 139, 220, 165, 222},
		},
		"failure no seed": {
			seed:    nil,
			wantErr: errors.ErrInput,
		},
		"failure wrong seed size": {
			seed:    []byte{1, 2, 3},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			priv, err := PrivKeyEd25519FromSeed(tc.seed)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, tc.expected, priv.Ed25519)
			}
		})
	}
}
