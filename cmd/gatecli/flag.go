package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/gate"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *gate.Address {
	var a gate.Address
	if defaultVal != "" {
		var err error
		a, err = gate.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q gate.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagAddress)(&a), name, usage)
	return &a
}

type flagAddress gate.Address

func (a flagAddress) String() string {
	if len(a) == 0 {
		return ""
	}
	return gate.Address(a).String()
}

func (a *flagAddress) Set(raw string) error {
	val, err := gate.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = flagAddress(val)
	return nil
}

// flagDie terminates the program when a flag value is invalid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
