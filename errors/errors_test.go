package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrNotFound, "foo"),
			root: ErrNotFound,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"successful comparison to a double wrapped error": {
			a:      ErrUnauthorized,
			b:      Wrap(Wrap(ErrUnauthorized, "inner"), "outer"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrOverflow, "too big"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrNotFound,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrUnauthorized,
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got:%v want: %v", got, tc.wantIs)
			}
		})
	}
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestRegisterDuplicatedCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Register(ErrNotFound.ABCICode(), "not found again")
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := fn()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("panic message lost: %q", err)
	}
}

func TestStackTraceIsAttachedOnce(t *testing.T) {
	err := Wrap(Wrap(ErrState, "inner"), "outer")
	if st := stackTrace(err); st == nil {
		t.Fatal("stack trace not attached")
	}
	full := fmt.Sprintf("%+v", err)
	if !strings.HasPrefix(full, "outer: inner: invalid state") {
		t.Fatalf("unexpected format: %q", full)
	}
}

func TestWithCause(t *testing.T) {
	kind := &Error{code: 999, desc: "outer kind"}
	cause := Wrap(ErrAmount, "insufficient funds")
	err := Wrap(kind.WithCause(cause), "send")

	if !kind.Is(err) {
		t.Fatal("kind not matched")
	}
	if !ErrAmount.Is(err) {
		t.Fatal("cause kind not matched")
	}
	if ErrState.Is(err) {
		t.Fatal("unrelated kind matched")
	}
	if got := err.Error(); got != "send: outer kind: insufficient funds: invalid amount" {
		t.Fatalf("unexpected message: %q", got)
	}
	if code, _ := ABCIInfo(err, false); code != 999 {
		t.Fatalf("want code 999, got %d", code)
	}
	if errors.Cause(err) != ErrAmount {
		t.Fatal("root cause lost")
	}
	if stackTrace(err) == nil {
		t.Fatal("cause stack trace lost")
	}

	if kind.WithCause(nil) != nil {
		t.Fatal("nil cause must give nil")
	}
	if stackTrace(kind.WithCause(stdlib.New("plain"))) == nil {
		t.Fatal("stack trace not attached to a plain cause")
	}
}
