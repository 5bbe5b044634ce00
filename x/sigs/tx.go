package sigs

// SignedTx is a transaction carrying signatures over its sign bytes. The
// signature decorator authenticates every transaction implementing it.
type SignedTx interface {
	// GetSignBytes returns the bytes covered by the signatures. Nonce and
	// chain id are added on top of them before signing.
	GetSignBytes() ([]byte, error)
	// GetSignatures returns the signatures in signing order.
	GetSignatures() []*StdSignature
}
