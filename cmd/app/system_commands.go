package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/openleap-io/crypto-vault-service/cmd/app/commands"
	"github.com/openleap-io/crypto-vault-service/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the API and metrics servers",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, config.Load(), version)
			},
		},
	}
}
