package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/silaspuma/rogen/pkg/cli"
)

func main() {
	// Local development keys live in .env; absence is fine.
	_ = godotenv.Load()

	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		os.Exit(err.Code)
	}
}
