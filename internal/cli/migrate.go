package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	appMigrations "github.com/yigit/coursereg/internal/app/migrations"
	"github.com/yigit/coursereg/internal/bootstrap"
)

func newMigrateCommand(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(*cfgFile, func(m *appMigrations.Migrator) error {
				if err := m.Up(cmd.Context()); err != nil {
					return err
				}
				v, err := m.Version(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", v)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which migrations have been applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(*cfgFile, func(m *appMigrations.Migrator) error {
				states, err := m.Status(cmd.Context())
				if err != nil {
					return err
				}
				return printStatus(cmd, states)
			})
		},
	})

	return cmd
}

// withMigrator opens the configured store, hands a migrator to fn and closes the store
func withMigrator(cfgFile string, fn func(*appMigrations.Migrator) error) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(cfgFile)
	if err != nil {
		return err
	}

	database, err := bootstrap.OpenDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	migrator, err := appMigrations.NewMigrator(database, cfg.Database.Driver)
	if err != nil {
		return err
	}
	return fn(migrator)
}

func printStatus(cmd *cobra.Command, states []appMigrations.MigrationState) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tFILE\tAPPLIED AT")
	for _, s := range states {
		appliedAt := "pending"
		if s.Applied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, s.File, appliedAt)
	}
	return w.Flush()
}
