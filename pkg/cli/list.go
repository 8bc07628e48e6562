package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/usecase/library"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
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
		Name:  "list",
		Usage: "List your saved games, newest first",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
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

			games, err := library.New(gateway).List(ctx, user.ID)
			if err != nil {
				return goerr.Wrap(err, "failed to list games")
			}

			for _, game := range games {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s/%s\t%s\n",
					game.ID, game.Name, game.Type, game.Theme,
					game.CreatedAt.Format("2006-01-02 15:04"))
			}

			return nil
		},
	}
}
