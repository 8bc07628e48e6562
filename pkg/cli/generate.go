package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
	"github.com/silaspuma/rogen/pkg/repository"
	"github.com/silaspuma/rogen/pkg/usecase/generate"
	"github.com/urfave/cli/v3"
)

func generateCommand() *cli.Command {
	var (
		cfg         config
		description string
		gameType    string
		theme       string
		output      string
		email       string
		password    string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "description",
			Aliases:     []string{"d"},
			Usage:       "What the game should be about",
			Required:    true,
			Destination: &description,
		},
		&cli.StringFlag{
			Name:        "type",
			Aliases:     []string{"t"},
			Usage:       "Game type (adventure, puzzle, racing, survival, shooter, tycoon, platformer, rpg)",
			Value:       "adventure",
			Destination: &gameType,
		},
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "Visual theme (fantasy, sci-fi, modern, medieval, cyberpunk, retro)",
			Value:       "fantasy",
			Destination: &theme,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write the script to this file instead of stdout",
			Destination: &output,
		},
		&cli.StringFlag{
			Name:        "email",
			Usage:       "Sign in to save the game to your library",
			Sources:     cli.EnvVars("ROGEN_EMAIL"),
			Destination: &email,
		},
		&cli.StringFlag{
			Name:        "password",
			Usage:       "Password for --email",
			Sources:     cli.EnvVars("ROGEN_PASSWORD"),
			Destination: &password,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)
	flags = append(flags, gatewayFlags(&cfg)...)

	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a game script from a description",
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

			// Anonymous generation is allowed; signing in makes the game
			// persistent.
			var ownerID string
			if email != "" {
				user, err := signIn(ctx, gateway, policy, email, password)
				if err != nil {
					return err
				}
				ownerID = user.ID
			}

			uc := generate.New(gemini, gateway, generate.WithPolicy(policy))

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " Generating game script..."
			sp.Start()
			result, err := uc.Generate(ctx, &model.GenerateRequest{
				Description: description,
				Type:        model.GameType(gameType),
				Theme:       model.Theme(theme),
			}, ownerID)
			sp.Stop()
			if err != nil {
				return goerr.Wrap(err, "generation failed")
			}

			game := result.Game
			fmt.Fprintf(c.Root().Writer, "%s (%s/%s)\n", game.Name, game.Type, game.Theme)
			fmt.Fprintf(c.Root().Writer, "ID: %s\nDownload: %s\n", game.ID, game.DownloadURL)
			for _, warning := range result.Warnings {
				fmt.Fprintf(c.Root().Writer, "warning: %s\n", warning)
			}

			if output == "" {
				fmt.Fprintln(c.Root().Writer, game.Script)
				return nil
			}
			if err := os.WriteFile(output, []byte(game.Script), 0644); err != nil {
				return goerr.Wrap(err, "failed to write script", goerr.V("path", output))
			}
			fmt.Fprintf(c.Root().Writer, "Script written to %s\n", output)
			return nil
		},
	}
}

// signIn enforces the password policy before touching the identity
// service, then authenticates.
func signIn(ctx context.Context, gateway repository.Gateway, policy model.Policy, email, password string) (*model.User, error) {
	if len(password) < policy.MinPasswordLen {
		return nil, goerr.Wrap(model.ErrAuth, "password is too short",
			goerr.V("min", policy.MinPasswordLen))
	}
	return gateway.SignIn(ctx, email, password)
}
