package server

import (
	"flag"

	"github.com/iov-one/gate/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

const defaultBind = "tcp://localhost:26658"

// AppGenerator builds the application stored under the home directory.
// The last argument enables debug mode, in which failures returned to
// tendermint carry their stack trace.
type AppGenerator func(home string, logger log.Logger, debug bool) (abci.Application, error)

func parseFlags(args []string) (bind string, debug bool, err error) {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	fs.StringVar(&bind, "bind", defaultBind, "address the abci socket server listens on")
	fs.BoolVar(&debug, "debug", false, "return stack traces to tendermint")
	err = fs.Parse(args)
	return bind, debug, err
}

// StartCmd serves the application over an abci socket and blocks until
// the process receives a termination signal.
func StartCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	bind, debug, err := parseFlags(args)
	if err != nil {
		return err
	}
	app, err := gen(home, logger, debug)
	if err != nil {
		return errors.Wrap(err, "build application")
	}

	srv, err := server.NewServer(bind, "socket", app)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "abci server: %s", err)
	}
	srv.SetLogger(logger.With("module", "abci-server"))
	logger.Info("starting abci server", "bind", bind, "debug", debug)
	if err := srv.Start(); err != nil {
		return errors.Wrap(err, "start abci server")
	}
	cmn.TrapSignal(logger, stopServer(logger, srv))

	// block until a signal terminates the process
	select {}
}

// stopServer returns the callback run on a termination signal.
func stopServer(logger log.Logger, srv cmn.Service) func() {
	return func() {
		if err := srv.Stop(); err != nil {
			logger.Error("stop abci server", "err", err)
		}
	}
}
