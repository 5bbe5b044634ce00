package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/crypto"
	"github.com/iov-one/gate/errors"
)

// SignCodeV1 prefixes the signed payload. It changes when the layout of
// the payload changes.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignatures verifies every signature of the transaction and
// returns the signer conditions in signature order. Each signer sequence
// is incremented in the store. A key may sign a transaction only once.
func VerifyTxSignatures(store gate.KVStore, tx SignedTx, chainID string) ([]gate.Condition, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()

	signers := make([]gate.Condition, 0, len(sigs))
	for i, sig := range sigs {
		if err := sig.Validate(); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		// Duplicates are rejected before the sequence is touched.
		signer := sig.Pubkey.Condition()
		for _, s := range signers {
			if s.Equals(signer) {
				return nil, errors.Wrapf(errors.ErrDuplicate, "signature %d: signer %s", i, signer.Address())
			}
		}
		if _, err := VerifySignature(store, sig, bz, chainID); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		signers = append(signers, signer)
	}
	return signers, nil
}

// VerifySignature checks a single signature over the transaction sign
// bytes, bound to the chain and the signer sequence. On success the
// sequence of the signer is incremented.
func VerifySignature(db gate.KVStore, sig *StdSignature, signBytes []byte, chainID string) (gate.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	bucket := NewBucket()
	user, err := bucket.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}

	digest, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Save(db, user); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

/*
BuildSignBytes returns the digest a signer signs:

  sha512(version | len(chainID) | chainID | sequence | signBytes)

version is SignCodeV1, len(chainID) a single byte, the sequence an 8 byte
big endian integer and signBytes the serialized transaction without its
signatures.
*/
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !gate.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	var seqBytes [8]byte
	binary.BigEndian.PutUint64(seqBytes[:], uint64(seq))

	h := sha512.New()
	h.Write(SignCodeV1)
	h.Write([]byte{uint8(len(chainID))})
	h.Write([]byte(chainID))
	h.Write(seqBytes[:])
	h.Write(signBytes)
	return h.Sum(nil), nil
}

// SignTx signs the transaction for given chain and sequence. The returned
// signature must be appended to the transaction signatures.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	signBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(signBytes, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}

// NextNonce returns the sequence the given signer must use for the next
// signature.
func NextNonce(db gate.ReadOnlyKVStore, pubkey *crypto.PublicKey) (int64, error) {
	user, err := NewBucket().GetOrCreate(db, pubkey)
	if err != nil {
		return 0, err
	}
	return user.Sequence, nil
}
