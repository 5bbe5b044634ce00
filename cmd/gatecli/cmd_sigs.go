package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/gate/cmd/gated/client"
	"github.com/iov-one/gate/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

Chain ID and sequence are fetched from the node unless provided.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", defaultTmAddr(),
			"Tendermint node address. You can use GATECLI_TM_ADDR environment variable to set it.")
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file that transaction should be signed with. You can use GATECLI_PRIV_KEY environment variable to set it.")
		chainFl = fl.String("chain", "", "Chain ID the transaction is signed for. Fetched from the node if not provided.")
		seqFl   = fl.Int64("seq", -1, "Sequence of the signer. Fetched from the node if negative.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	var gateClient *client.GateClient
	if *chainFl == "" || *seqFl < 0 {
		gateClient = client.NewClient(client.NewHTTPConnection(*tmAddrFl))
	}

	chainID := *chainFl
	if chainID == "" {
		if chainID, err = gateClient.ChainID(); err != nil {
			return fmt.Errorf("cannot fetch chain ID: %s", err)
		}
	}

	seq := *seqFl
	if seq < 0 {
		nonce := client.NewNonce(gateClient, key.PublicKey().Address())
		if seq, err = nonce.Query(); err != nil {
			return fmt.Errorf("cannot get the next sequence number: %s", err)
		}
	}

	sig, err := sigs.SignTx(key, tx, chainID, seq)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}
