package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors. Every error returned by a handler should wrap one of them,
// its code is what the client receives.
var (
	// ErrUnauthorized means a required signature is missing.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrMsg means a message failed validation.
	ErrMsg = Register(4, "invalid message")

	// ErrModel means a stored entity failed validation.
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate means an entity with the same key already exists.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman marks a code path that a correct program never reaches.
	ErrHuman = Register(7, "coding error")

	ErrEmpty = Register(9, "value is empty")

	// ErrState means an entity is not in a state that allows the
	// operation.
	ErrState = Register(10, "invalid state")

	ErrType = Register(11, "invalid type")

	// ErrAmount means an invalid amount, or more than an account holds.
	ErrAmount = Register(13, "invalid amount")

	ErrInput = Register(14, "invalid input")

	// ErrOverflow means the result of a computation does not fit its
	// type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase means a storage operation failed.
	ErrDatabase = Register(17, "database")

	// ErrPanic is the error of a recovered panic. Its details never reach
	// the client.
	ErrPanic = Register(111222, "panic")
)

// Register declares a root error. Codes are unique, registering a code a
// second time panics. Call it from package level variable declarations
// only.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error code %d already used by %q", code, e.desc))
	}
	e := &Error{code: code, desc: description}
	usedCodes[code] = e
	return e
}

// usedCodes holds every registered code. Code 1 is the internal code of
// errors that do not wrap a root error.
var usedCodes = map[uint32]*Error{
	1: {code: 1, desc: "internal"},
}

// Error is a root error.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the code sent to the client.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New returns a new error of this kind. It is the same as
// Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with a format string.
func (e *Error) Newf(format string, args ...interface{}) error {
	return e.New(fmt.Sprintf(format, args...))
}

// Is reports whether err is this error or wraps it. A nil kind matches a
// nil error, including a typed nil.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return err == nil || reflect.ValueOf(err).IsNil()
	}
	for err != nil {
		if err == kind {
			return true
		}
		if k, ok := err.(*kindError); ok && k.kind == kind {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap adds description to err. Wrap of a nil error is nil, so
//   return errors.Wrap(store.Set(k, v), "save")
// works without a check.
//
// The innermost wrap records a stack trace, printed with %+v. An error
// that wraps no root error reports the internal code.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format appends the stack trace to the message for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, e.Error())
	if verb != 'v' || !s.Flag('+') {
		return
	}
	if st := stackTrace(e); st != nil {
		fmt.Fprintf(s, "%+v", st)
	}
}

// WithCause returns an error of this kind that keeps cause, with its
// stack trace, as the parent. Is matches this kind and every kind in the
// cause chain. The ABCI code is the code of this kind. WithCause of a nil
// error is nil.
func (e *Error) WithCause(cause error) error {
	if errIsNil(cause) {
		return nil
	}
	if stackTrace(cause) == nil {
		cause = errors.WithStack(cause)
	}
	return &kindError{kind: e, cause: cause}
}

type kindError struct {
	kind  *Error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.desc + ": " + e.cause.Error()
}

func (e *kindError) Cause() error {
	return e.cause
}

func (e *kindError) ABCICode() uint32 {
	return e.kind.code
}

func (e *kindError) Format(s fmt.State, verb rune) {
	fmt.Fprint(s, e.Error())
	if verb != 'v' || !s.Flag('+') {
		return
	}
	if st := stackTrace(e); st != nil {
		fmt.Fprintf(s, "%+v", st)
	}
}

// Recover turns a panic into an ErrPanic assigned to *err. It must be
// called with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// WithType wraps err with the Go type name of obj.
func WithType(err error, obj interface{}) error {
	return Wrapf(err, "%T", obj)
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found while unwrapping err.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}
