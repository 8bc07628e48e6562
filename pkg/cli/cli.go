package cli

import (
	"context"

	"github.com/silaspuma/rogen/pkg/server"
	"github.com/silaspuma/rogen/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:    "rogen",
		Usage:   "AI-powered Roblox game script generator",
		Version: server.Version,
		Commands: []*cli.Command{
			serveCommand(),
			generateCommand(),
			listCommand(),
			deleteCommand(),
			signupCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		logging.Default().Error("command failed", "error", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
