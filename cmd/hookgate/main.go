// Command hookgate runs the lifecycle gate engine: a policy and
// side-effect layer that evaluates YAML-authored rules against an
// autonomous agent's lifecycle hook points and reports block/allow/
// context-injection decisions back to the host.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("skipping .env load", "error", err)
	}

	if err := buildRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "hookgate",
		Short:        "Lifecycle gate engine for autonomous agent hook points",
		Version:      fmt.Sprintf("%s (commit %s)", version, commit),
		SilenceUsage: true,
	}
	root.AddCommand(
		buildServeCmd(),
		buildValidateCmd(),
		buildSchemaCmd(),
		buildFireCmd(),
	)
	return root
}
