package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inclusionlab/cvmatch/internal/config"
	"github.com/inclusionlab/cvmatch/internal/matching"
	"github.com/inclusionlab/cvmatch/internal/server"
)

const defaultServePort = 8080

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for CV extraction, candidate processing and offer matching.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
	serveOffersFile string
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", defaultServePort, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveOffersFile, "offers", "", "Path to JSON offers catalog file")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print processed profiles and matches")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveServeConfig(cmd.Flags())
	if err != nil {
		return err
	}

	srv, err := server.NewFromConfig(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveServeConfig builds the effective configuration. Precedence, lowest
// to highest: config file, environment, explicitly set flags. Remaining
// unset values fall back to defaults.
func resolveServeConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Config{}
	if serveConfigFile != "" {
		loaded, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()

	// Only override when the flag was explicitly set
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("offers") {
		cfg.OffersFile = serveOffersFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = serveVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:           defaultServePort,
		CandidateLimit: matching.DefaultCandidateLimit,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.DatabaseURL == "" && cfg.OffersFile == "" {
		return cfg, fmt.Errorf("either DATABASE_URL or an offers file is required")
	}
	return cfg, nil
}
