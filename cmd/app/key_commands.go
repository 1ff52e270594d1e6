package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/securenotes/cmd/app/commands"
	cryptoDomain "github.com/allisson/securenotes/internal/crypto/domain"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-encryption-key",
			Usage: "Generate a random hex encoded key for ENCRYPTION_SECRET",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					Value:   cryptoDomain.KeySize256,
					Usage:   "Key size in bytes (16 for AES-128-GCM, 32 for AES-256-GCM or ChaCha20-Poly1305)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateEncryptionKey(cmd.Root().Writer, int(cmd.Int("size")))
			},
		},
	}
}
