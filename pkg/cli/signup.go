package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/urfave/cli/v3"
)

func signupCommand() *cli.Command {
	var (
		cfg      config
		email    string
		password string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "email",
			Usage:       "Email for the new account",
			Required:    true,
			Destination: &email,
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Password for the new account",
			Required:    true,
			Destination: &password,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, gatewayFlags(&cfg)...)

	return &cli.Command{
		Name:  "signup",
		Usage: "Create an account for saving generated games",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			policy, err := cfg.setup()
			if err != nil {
				return err
			}

			// The length check happens before the gateway is invoked.
			if len(password) < policy.MinPasswordLen {
				return goerr.Wrap(model.ErrAuth, "password is too short",
					goerr.V("min", policy.MinPasswordLen))
			}

			gateway, err := cfg.newGateway(policy)
			if err != nil {
				return err
			}

			if err := gateway.SignUp(ctx, email, password); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Account created for %s\n", email)
			return nil
		},
	}
}
