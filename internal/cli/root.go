// Package cli provides the command-line interface for the course
// registration service.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// DefaultConfigPath is used when --config is not given
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// NewRootCmd creates and returns the root command. Running it without a
// subcommand serves the API.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "coursereg",
		Short: "Course registration API",
		Long: `coursereg manages students, courses and their enrollments over a JSON API.

The store is PostgreSQL or SQLite depending on database.driver.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", DefaultConfigPath, "config file")

	rootCmd.AddCommand(newServeCommand(&cfgFile))
	rootCmd.AddCommand(newMigrateCommand(&cfgFile))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
