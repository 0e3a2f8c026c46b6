package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ruffyt/ruffyt/pkg/config"
	"github.com/ruffyt/ruffyt/pkg/errors"
	"github.com/ruffyt/ruffyt/pkg/server"
)

var (
	serveConfigFlag string
	serveDirFlag    string
	servePortFlag   string
)

// startServerFunc allows stubbing the server in tests.
var startServerFunc = server.Start

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ruffyt web service",
	Long:  `Start the HTTP service exposing the health and echo endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigFlag, "config", "c", "", "Config file path")
	serveCmd.Flags().StringVarP(&serveDirFlag, "directory", "d", ".", "Directory to operate in")
	serveCmd.Flags().StringVarP(&servePortFlag, "port", "p", "", "Port to listen on (overrides config)")
}

// runServe executes the serve command.
//
// The service runs until SIGINT or SIGTERM, then shuts down gracefully.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused positional arguments
//
// Returns:
//   - error: ExitError with the appropriate code on failure
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveConfigFlag, serveDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}
	if servePortFlag != "" {
		cfg.ServerPort = servePortFlag
		if err := cfg.Validate(); err != nil {
			return errors.NewExitError(errors.ExitConfigError, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Listening on :%s\n", cfg.ServerPort)
	if err := startServerFunc(ctx, server.New(), cfg); err != nil {
		return errors.NewExitError(errors.ExitFailure, err)
	}
	return nil
}
