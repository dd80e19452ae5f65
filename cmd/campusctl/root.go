package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/unilink/campus-api/internal/pkg/config"
	"github.com/unilink/campus-api/pkg/logger"
)

// env resolves configuration for every subcommand. Tests swap it.
var env envconfig.Lookuper = envconfig.OsLookuper()

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "campusctl",
		Short:        "Operator tools for the UniLink campus API",
		Long:         "campusctl reads the same environment as the server (STORE_DRIVER, DATABASE_URL, MONGO_URI, JWT_SECRET, ...).",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newSeedAdminCommand(),
		newTokenCommand(),
		newLocationsCommand(),
	)
	return cmd
}

func loadConfig(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Parse(ctx, env)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "campusctl"})
	return cfg, log, nil
}
