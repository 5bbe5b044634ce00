package errors

import (
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode is the code of a successful ABCI response.
	SuccessABCICode = 0

	// Errors without a registered code are reported under this code with
	// a generic message.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of the ABCI response for err.
//
// A registered error reports its code and message. Any other error is
// reported as code 1 with a generic message. A recovered panic keeps its
// code but its message is reduced to the error description, as the panic
// value may reveal internals. In debug mode the full message, including
// the stack trace, is always returned.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	case ErrPanic.Is(err):
		return code, ErrPanic.desc
	default:
		return code, err.Error()
	}
}

// ABCIError converts an ABCI code and log received by a client back into an
// error. A registered code gives an error for which Is of the registered
// instance returns true. Servers must return registered errors instead.
func ABCIError(code uint32, log string) error {
	if e, ok := usedCodes[code]; ok {
		return Wrap(e, log)
	}
	// never matches Is, but keeps the code
	return Wrap(&Error{code: code, desc: "unknown error code"}, log)
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the cause chain that has
// one.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}

// errIsNil returns true for nil and for a typed nil pointer.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
