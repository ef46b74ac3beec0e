package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"district-scheduler/pkg/clients/endpoint"
	"district-scheduler/pkg/config"
	"district-scheduler/pkg/districts"
	"district-scheduler/pkg/logging"
	"district-scheduler/pkg/services"
	"district-scheduler/pkg/validation"
)

var rootCmd = &cobra.Command{
	Use:   "district-scheduler",
	Short: "District visit scheduling form",
	Long: `Serves the district visit scheduling form and forwards validated
submissions to the collection endpoint.

Available subcommands:
  serve    - Run the web form (default)
  managers - Print the manager to district table
  submit   - Validate and send one submission from flags`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// app bundles the dependencies every command shares
type app struct {
	cfg         *config.Config
	logger      *zap.Logger
	directory   *districts.Directory
	validator   *validation.Validator
	submissions services.SubmissionService
}

func loadApp() (*app, error) {
	if _, err := config.LoadEnvFiles(".env", ".env.local"); err != nil {
		fmt.Fprintln(os.Stderr, "Error loading .env file:", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("error building logger: %w", err)
	}

	directory, err := districts.Load(cfg.DistrictsFile)
	if err != nil {
		return nil, err
	}

	client := endpoint.NewClient(cfg.EndpointURL, cfg.SubmissionTimeout, logger)

	return &app{
		cfg:         cfg,
		logger:      logger,
		directory:   directory,
		validator:   validation.New(validation.WithLocation(cfg.Location())),
		submissions: services.NewSubmissionService(client, logger),
	}, nil
}

func init() {
	rootCmd.AddCommand(serveCmd, managersCmd, submitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSubmitFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
