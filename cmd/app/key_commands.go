package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/openleap-io/crypto-vault-service/cmd/app/commands"
	"github.com/openleap-io/crypto-vault-service/internal/app"
	"github.com/openleap-io/crypto-vault-service/internal/config"
	cryptoUseCase "github.com/openleap-io/crypto-vault-service/internal/crypto/usecase"
)

type cryptCommandFunc func(
	ctx context.Context,
	useCase cryptoUseCase.CryptoUseCase,
	container *app.Container,
	value string,
	sessionID *string,
	format string,
) error

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-secret",
			Usage: "Generate a random secret file for CVS_ENCRYPTION_KEY_PATH",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "output",
					Aliases:  []string{"o"},
					Required: true,
					Usage:    "Path of the secret file to create (must not exist)",
				},
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   commands.DefaultSecretLength,
					Usage:   "Number of random bytes to generate",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				container.SetLogOutput(os.Stderr)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGenerateSecret(
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("output"),
					int(cmd.Int("length")),
				)
			},
		},
		cryptCommand("encrypt", "Encrypt a single value with the configured key material",
			func(ctx context.Context, uc cryptoUseCase.CryptoUseCase, c *app.Container, v string, s *string, f string) error {
				return commands.RunEncrypt(ctx, uc, c.Logger(), commands.DefaultIO().Writer, v, s, f)
			},
		),
		cryptCommand("decrypt", "Decrypt a single value with the configured key material",
			func(ctx context.Context, uc cryptoUseCase.CryptoUseCase, c *app.Container, v string, s *string, f string) error {
				return commands.RunDecrypt(ctx, uc, c.Logger(), commands.DefaultIO().Writer, v, s, f)
			},
		),
	}
}

// cryptCommand builds the encrypt and decrypt commands, which share flags.
// An absent --session selects the default IV; an empty one is a real session.
func cryptCommand(name, usage string, run cryptCommandFunc) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "value",
				Aliases:  []string{"v"},
				Required: true,
				Usage:    "Value to process",
			},
			&cli.StringFlag{
				Name:    "session",
				Aliases: []string{"s"},
				Usage:   "Session identifier the IV is derived from",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: 'text' or 'json'",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.Load()
			// One-shot commands record nothing worth scraping.
			cfg.MetricsEnabled = false

			container := app.NewContainer(cfg)
			container.SetLogOutput(os.Stderr)
			defer func() { _ = container.Shutdown(ctx) }()

			useCase, err := container.CryptoUseCase()
			if err != nil {
				return err
			}

			var sessionID *string
			if cmd.IsSet("session") {
				session := cmd.String("session")
				sessionID = &session
			}

			return run(ctx, useCase, container, cmd.String("value"), sessionID, cmd.String("format"))
		},
	}
}
