package sigs

import (
	"crypto/sha512"
	"testing"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/crypto"
	"github.com/iov-one/gate/errors"
	"github.com/iov-one/gate/gatetest/assert"
	"github.com/iov-one/gate/store"
)

func TestBuildSignBytes(t *testing.T) {
	cases := map[string]struct {
		payload []byte
		chainID string
		seq     int64
		want    []byte
		wantErr *errors.Error
	}{
		"sequence zero": {
			payload: []byte("tx"),
			chainID: "test-chain",
			seq:     0,
			want: append([]byte{0, 0xCA, 0xFE, 0, 10},
				append([]byte("test-chain"), 0, 0, 0, 0, 0, 0, 0, 0, 't', 'x')...),
		},
		"sequence is big endian": {
			payload: nil,
			chainID: "test-chain",
			seq:     258,
			want: append([]byte{0, 0xCA, 0xFE, 0, 10},
				append([]byte("test-chain"), 0, 0, 0, 0, 0, 0, 1, 2)...),
		},
		"negative sequence": {
			chainID: "test-chain",
			seq:     -1,
			wantErr: ErrInvalidSequence,
		},
		"invalid chain id": {
			chainID: "bad",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := BuildSignBytes(tc.payload, tc.chainID, tc.seq)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if err != nil {
				return
			}
			want := sha512.Sum512(tc.want)
			assert.Equal(t, want[:], got)
		})
	}
}

func TestVerifySignatureIncrementsSequence(t *testing.T) {
	db := store.MemStore()
	priv := crypto.GenPrivKeyEd25519()
	payload := []byte("hello")
	chainID := "some-chain"

	for seq := int64(0); seq < 3; seq++ {
		toSign, err := BuildSignBytes(payload, chainID, seq)
		assert.Nil(t, err)
		sig, err := priv.Sign(toSign)
		assert.Nil(t, err)
		std := &StdSignature{Pubkey: priv.PublicKey(), Signature: sig, Sequence: seq}

		cond, err := VerifySignature(db, std, payload, chainID)
		assert.Nil(t, err)
		assert.Equal(t, priv.PublicKey().Condition(), cond)

		next, err := NextNonce(db, priv.PublicKey())
		assert.Nil(t, err)
		assert.Equal(t, seq+1, next)
	}

	// a signature with a skipped sequence is rejected
	toSign, err := BuildSignBytes(payload, chainID, 7)
	assert.Nil(t, err)
	sig, err := priv.Sign(toSign)
	assert.Nil(t, err)
	_, err = VerifySignature(db, &StdSignature{Pubkey: priv.PublicKey(), Signature: sig, Sequence: 7}, payload, chainID)
	assert.IsErr(t, ErrInvalidSequence, err)
}

func TestStdSignatureValidate(t *testing.T) {
	priv := crypto.GenPrivKeyEd25519()
	sig, err := priv.Sign([]byte("x"))
	assert.Nil(t, err)

	cases := map[string]struct {
		sig     StdSignature
		wantErr *errors.Error
	}{
		"valid": {
			sig: StdSignature{Pubkey: priv.PublicKey(), Signature: sig},
		},
		"negative sequence": {
			sig:     StdSignature{Pubkey: priv.PublicKey(), Signature: sig, Sequence: -2},
			wantErr: ErrInvalidSequence,
		},
		"missing public key": {
			sig:     StdSignature{Signature: sig},
			wantErr: errors.ErrUnauthorized,
		},
		"malformed public key": {
			sig:     StdSignature{Pubkey: &crypto.PublicKey{Ed25519: []byte{1, 2}}, Signature: sig},
			wantErr: errors.ErrUnauthorized,
		},
		"missing signature": {
			sig:     StdSignature{Pubkey: priv.PublicKey()},
			wantErr: errors.ErrUnauthorized,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.sig.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestModelSerialization(t *testing.T) {
	priv := crypto.GenPrivKeyEd25519()
	sig, err := priv.Sign([]byte("x"))
	assert.Nil(t, err)

	std := &StdSignature{Pubkey: priv.PublicKey(), Signature: sig, Sequence: 42}
	raw, err := std.Marshal()
	assert.Nil(t, err)
	var readSig StdSignature
	assert.Nil(t, readSig.Unmarshal(raw))
	assert.Equal(t, std, &readSig)

	user := &UserData{Pubkey: priv.PublicKey(), Sequence: 3}
	raw, err = user.Marshal()
	assert.Nil(t, err)
	var readUser UserData
	assert.Nil(t, readUser.Unmarshal(raw))
	assert.Equal(t, user, &readUser)

	assert.IsErr(t, ErrInvalidSequence, (&UserData{Sequence: 1}).Validate())
}

func TestVerifyTxSignaturesRejectsDuplicateSigner(t *testing.T) {
	db := store.MemStore()
	alice := crypto.GenPrivKeyEd25519()
	bob := crypto.GenPrivKeyEd25519()
	chainID := "dup-chain"

	tx := NewStdTx([]byte("transfer"))
	for _, s := range []struct {
		key *crypto.PrivateKey
		seq int64
	}{
		{alice, 0},
		{bob, 0},
		{alice, 1},
	} {
		sig, err := SignTx(s.key, tx, chainID, s.seq)
		assert.Nil(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}

	_, err := VerifyTxSignatures(db, tx, chainID)
	assert.IsErr(t, errors.ErrDuplicate, err)

	// the same signature twice is a duplicate, not a replay
	db = store.MemStore()
	twice := NewStdTx([]byte("transfer"))
	sig, err := SignTx(alice, twice, chainID, 0)
	assert.Nil(t, err)
	twice.Signatures = []*StdSignature{sig, sig}
	_, err = VerifyTxSignatures(db, twice, chainID)
	assert.IsErr(t, errors.ErrDuplicate, err)
	seq, err := NextNonce(db, alice.PublicKey())
	assert.Nil(t, err)
	assert.Equal(t, int64(1), seq)

	// without the second signature of alice both signers are returned in order
	db = store.MemStore()
	tx.Signatures = tx.Signatures[:2]
	signers, err := VerifyTxSignatures(db, tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, []gate.Condition{alice.PublicKey().Condition(), bob.PublicKey().Condition()}, signers)
}
