package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/usecase/library"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	var (
		cfg      config
		email    string
		password string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "email",
			Usage:       "Account email",
			Required:    true,
			Sources:     cli.EnvVars("ROGEN_EMAIL"),
			Destination: &email,
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Account password",
			Required:    true,
			Sources:     cli.EnvVars("ROGEN_PASSWORD"),
			Destination: &password,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, gatewayFlags(&cfg)...)

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete one of your saved games",
		ArgsUsage: "<game-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return goerr.New("game id argument is required")
			}

			policy, err := cfg.setup()
			if err != nil {
				return err
			}

			gateway, err := cfg.newGateway(policy)
			if err != nil {
				return err
			}

			user, err := signIn(ctx, gateway, policy, email, password)
			if err != nil {
				return err
			}

			if err := library.New(gateway).Delete(ctx, id, user.ID); err != nil {
				return goerr.Wrap(err, "failed to delete game", goerr.V("id", id))
			}

			fmt.Fprintf(c.Root().Writer, "Deleted %s\n", id)
			return nil
		},
	}
}
