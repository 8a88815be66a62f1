package cli

import (
	"github.com/spf13/cobra"

	"github.com/yigit/coursereg/internal/bootstrap"
	"github.com/yigit/coursereg/internal/server"
)

func newServeCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the store and serve the HTTP API",
		Example: `  # Serve with the default config file
  coursereg serve

  # Serve against PostgreSQL configured through the environment
  DB_DRIVER=postgres DB_HOST=localhost coursereg serve`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, *cfgFile)
		},
	}
}

func runServe(cmd *cobra.Command, cfgFile string) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(cfgFile)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(cmd.Context(), cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		return err
	}

	lgr.Info().Msg("Application finished gracefully.")
	return nil
}
