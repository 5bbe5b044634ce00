package threshold

import "github.com/iov-one/gate/errors"

// threshold takes 1200-1210
var (
	// ErrAddressMismatch is returned when a record is not stored under its
	// canonical address or the claimed address is not the canonical one.
	ErrAddressMismatch = errors.Register(1200, "config address mismatch")

	// ErrBelowThreshold is returned when a transfer amount is smaller than
	// the configured threshold.
	ErrBelowThreshold = errors.Register(1201, "amount below threshold")

	// ErrTransferFailed is returned when the ledger refused to move the
	// value. The ledger error is kept as its cause.
	ErrTransferFailed = errors.Register(1202, "transfer failed")
)
