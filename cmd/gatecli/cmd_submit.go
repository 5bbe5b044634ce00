package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/gate"
	"github.com/iov-one/gate/cmd/gated/client"
	"github.com/iov-one/gate/x/threshold"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it.

For certain transactions response is written out.

Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use GATECLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	gateClient := client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	resp := gateClient.BroadcastTx(tx)
	if err := resp.IsError(); err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}

	pretty, err := extractResponse(tx, resp.Response.DeliverTx.Data)
	if err != nil {
		return fmt.Errorf("cannot extract response: %s", err)
	}
	if pretty != "" {
		fmt.Fprintln(output, pretty)
	}
	return nil
}

// extractResponse parse given raw response data bytes according to what is
// expected considering the submitted transaction. It returns a human readable
// representation of given response. It can return no data (and no error) if
// response does not contain anythink worth showing to the user.
func extractResponse(tx gate.Tx, respData []byte) (string, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return "", fmt.Errorf("cannot extract message from transaction: %s", err)
	}
	format, ok := formatters[msg.Path()]
	if !ok {
		// If no formatter is registered, we do not print the result.
		return "", nil
	}
	return format(respData)
}

// formatters contains a mapping of a message path to response parser. Response
// parse function accepts a raw bytes of serialized response and must return a
// human representation of that data.
var formatters = map[string]func([]byte) (string, error){
	threshold.InitMsg{}.Path():            fmtConfig,
	threshold.UpdateThresholdMsg{}.Path(): fmtConfig,
	threshold.UpdateAddressesMsg{}.Path(): fmtConfig,
}

func fmtConfig(raw []byte) (string, error) {
	var cfg threshold.Config
	if err := cfg.Unmarshal(raw); err != nil {
		return "", fmt.Errorf("cannot parse config: %s", err)
	}
	pretty, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return "", fmt.Errorf("cannot JSON serialize: %s", err)
	}
	return string(pretty), nil
}
