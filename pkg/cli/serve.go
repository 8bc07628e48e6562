package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/server"
	"github.com/silaspuma/rogen/pkg/session"
	"github.com/silaspuma/rogen/pkg/store"
	"github.com/silaspuma/rogen/pkg/usecase/generate"
	"github.com/silaspuma/rogen/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		cfg        config
		addr       string
		genTimeout time.Duration
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address",
			Value:       ":8080",
			Sources:     cli.EnvVars("ROGEN_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "gen-timeout",
			Usage:       "Budget for a single generation request",
			Value:       120 * time.Second,
			Sources:     cli.EnvVars("ROGEN_GEN_TIMEOUT"),
			Destination: &genTimeout,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)
	flags = append(flags, gatewayFlags(&cfg)...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API (generate, download, health)",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			policy, err := cfg.setup()
			if err != nil {
				return err
			}

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			gateway, err := cfg.newGateway(policy)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(server.Config{
				Logger:       logging.Default(),
				Orchestrator: generate.New(gemini, gateway, generate.WithPolicy(policy)),
				Session:      session.New(ctx, gateway),
				Gateway:      gateway,
				Policy:       policy,
				Cache:        store.New(),
				GenTimeout:   genTimeout,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to create server")
			}

			logging.Default().Info("listening", "addr", addr, "backend", cfg.backend)
			if err := http.ListenAndServe(addr, srv); err != nil {
				return goerr.Wrap(err, "server stopped", goerr.V("addr", addr))
			}
			return nil
		},
	}
}
