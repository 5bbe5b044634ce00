package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/cmd/gated/app"
	"github.com/iov-one/gate/x/threshold"
)

func cmdInitThreshold(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that initializes the threshold transfer configuration.
The main signer of this transaction becomes the authority that is allowed to
update the configuration later.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl       = flAddress(fl, "src", "", "An account address that all transfers are sent from.")
		dstFl       = flAddress(fl, "dst", "", "An account address that all transfers are sent to.")
		thresholdFl = fl.Uint64("threshold", 0, "The minimal amount a single transfer must move.")
	)
	fl.Parse(args)

	return writeMsg(output, &threshold.InitMsg{
		Source:      *srcFl,
		Destination: *dstFl,
		Threshold:   *thresholdFl,
	})
}

func cmdSend(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for transfering funds from the configured source account
to the configured destination account. The amount must not be below the
configured threshold. The transaction must be signed by the source account.
`)
		fl.PrintDefaults()
	}
	var (
		configFl = flAddress(fl, "config", "", "Address of the configuration. Default is the canonical one.")
		srcFl    = flAddress(fl, "src", "", "A source account address that the founds are send from.")
		dstFl    = flAddress(fl, "dst", "", "A destination account address that the founds are send to.")
		amountFl = fl.Uint64("amount", 0, "An amount that is to be transferred.")
		memoFl   = fl.String("memo", "", "A short message attached to the transfer operation.")
	)
	fl.Parse(args)

	return writeMsg(output, &threshold.SendMsg{
		Config:      configAddress(*configFl),
		Source:      *srcFl,
		Destination: *dstFl,
		Amount:      *amountFl,
		Memo:        *memoFl,
	})
}

func cmdSetThreshold(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that replaces the configured threshold. The transaction
must be signed by the authority.
`)
		fl.PrintDefaults()
	}
	var (
		configFl    = flAddress(fl, "config", "", "Address of the configuration. Default is the canonical one.")
		thresholdFl = fl.Uint64("threshold", 0, "The new minimal amount a single transfer must move.")
	)
	fl.Parse(args)

	return writeMsg(output, &threshold.UpdateThresholdMsg{
		Config:    configAddress(*configFl),
		Threshold: *thresholdFl,
	})
}

func cmdSetAddresses(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that replaces both the configured source and destination
accounts. The transaction must be signed by the authority.
`)
		fl.PrintDefaults()
	}
	var (
		configFl = flAddress(fl, "config", "", "Address of the configuration. Default is the canonical one.")
		srcFl    = flAddress(fl, "src", "", "The new source account address.")
		dstFl    = flAddress(fl, "dst", "", "The new destination account address.")
	)
	fl.Parse(args)

	return writeMsg(output, &threshold.UpdateAddressesMsg{
		Config:      configAddress(*configFl),
		Source:      *srcFl,
		Destination: *dstFl,
	})
}

// configAddress returns given address or the canonical configuration
// address if none was provided.
func configAddress(addr gate.Address) gate.Address {
	if len(addr) != 0 {
		return addr
	}
	canonical, _, err := threshold.ConfigAddress()
	if err != nil {
		flagDie("cannot compute configuration address: %s", err)
	}
	return canonical
}

// writeMsg validates the message and writes it as an unsigned transaction.
func writeMsg(output io.Writer, msg gate.Msg) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid message: %s", err)
	}
	tx, err := app.NewTx(msg)
	if err != nil {
		return err
	}
	_, err = writeTx(output, tx)
	return err
}
