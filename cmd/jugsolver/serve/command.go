// Package serve implements the `serve` command, which runs the HTTP service
// until interrupted.
package serve

import (
	"context"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/pdrpinto/waterjug/cmd/jugsolver/internal/helper"
	"github.com/pdrpinto/waterjug/internal/cmdlogger"
	"github.com/pdrpinto/waterjug/internal/server"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func Command(_ io.Reader, _, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serves the solver and step-by-step sessions over HTTP",
		Flags: slices.Concat(
			[]cli.Flag{
				&cli.StringFlag{
					Name:  "host",
					Usage: "interface to listen on (default: 127.0.0.1)",
				},
				&cli.IntFlag{
					Name:  "port",
					Usage: "port to listen on (default: 8080)",
				},
				&cli.StringFlag{
					Name:  "heuristic",
					Usage: "default search heuristic for requests that do not choose one",
				},
			},
			helper.BuildCommonFlags(),
		),
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	settings, err := helper.LoadSettings(cmd)
	if err != nil {
		return err
	}
	cfg := settings.Config
	if cmd.IsSet("host") {
		cfg.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Server.Port = cmd.Int("port")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.ListenAndServe)
	g.Go(func() error {
		<-gctx.Done()
		cmdlogger.Infof("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
