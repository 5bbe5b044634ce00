package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/gate/cmd/gated/client"
	"github.com/iov-one/gate/x/threshold"
)

func cmdQueryConfig(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Fetch the threshold transfer configuration and print it as JSON.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use GATECLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	gateClient := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	resp, err := gateClient.GetConfig()
	if err != nil {
		return fmt.Errorf("cannot query configuration: %s", err)
	}
	if resp == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return writeJSON(output, resp)
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Fetch the balance of an account.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use GATECLI_TM_ADDR environment variable to set it.")
		addrFl = flAddress(fl, "addr", "", "Address of the account.")
	)
	fl.Parse(args)

	if len(*addrFl) == 0 {
		flagDie("account address is required")
	}

	gateClient := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	resp, err := gateClient.GetWallet(*addrFl)
	if err != nil {
		return fmt.Errorf("cannot query wallet: %s", err)
	}
	var balance uint64
	if resp != nil {
		balance = resp.Wallet.Balance
	}
	_, err = fmt.Fprintln(output, balance)
	return err
}

func cmdConfigAddress(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the canonical address the threshold configuration is stored under,
together with the derivation tag used to compute it.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	addr, tag, err := threshold.ConfigAddress()
	if err != nil {
		return fmt.Errorf("cannot compute configuration address: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s %d\n", addr, tag)
	return err
}

func writeJSON(output io.Writer, obj interface{}) error {
	pretty, err := json.MarshalIndent(obj, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}
