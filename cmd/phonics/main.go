// Command phonics is the operator CLI: it serves the API, resolves and
// browses phonemes offline, mints bearer tokens and applies migrations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/phonics-backend/internal/app"
	"github.com/heartmarshall/phonics-backend/internal/config"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "phonics",
		Short:         "Phoneme resolution and teaching-content service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yaml (default $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newServeCmd(),
		newResolveCmd(),
		newBrowseCmd(),
		newTokenCmd(),
		newMigrateCmd(),
	)
	return root
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
