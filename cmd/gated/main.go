package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/gate"
	gated "github.com/iov-one/gate/cmd/gated/app"
	"github.com/iov-one/gate/commands/server"
	"github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string

	flagLogLevel = "log_level"
	varLogLevel  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".gate")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLogLevel = flag.String(flagLogLevel, "*:info", "log level, for example main:debug,*:error")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("gated")
	fmt.Println("          Threshold guarded transfer node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("validate  Check the app_state of genesis files")
	fmt.Println("getblock  Extract a block from blockchain.db")
	fmt.Println("retry     Run last block again to ensure it produces same result")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.gate")
  -log_level string
        log level, for example main:debug,*:error (default "*:info")`)
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	logger, err := flags.ParseLogLevel(*varLogLevel,
		log.NewTMLogger(log.NewSyncWriter(os.Stdout)), "info")
	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		os.Exit(1)
	}
	logger = logger.With("module", "gate")

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(gated.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(gated.GenerateApp, logger, *varHome, rest)
	case "validate":
		err = server.ValidateGenesis(gated.Initializers(), rest)
	case "getblock":
		err = server.GetBlockCmd(rest)
	case "retry":
		err = server.RetryCmd(gated.InlineApp, logger, *varHome, rest)
	case "version":
		fmt.Println(gate.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
