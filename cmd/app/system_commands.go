package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/securenotes/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the notes API and metrics servers",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Apply database migrations for DB_DRIVER",
			Action: func(context.Context, *cli.Command) error {
				return commands.RunMigrate()
			},
		},
	}
}
