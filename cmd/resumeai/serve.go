package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resumeai/internal/config"
	"resumeai/internal/generate"
	"resumeai/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveStateDir   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for generation, document state, rendering, and export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveStateDir, "state-dir", "", "Directory for persisted document state")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("state-dir") {
		cfg.StateDir = serveStateDir
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	gen, err := generate.NewGeminiClient(context.Background(), cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		StateDir:      cfg.StateDir,
		GithubBaseURL: cfg.GithubBaseURL,
	}, gen)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig loads the optional config file, then fills remaining gaps
// from the environment and the built-in defaults.
func resolveConfig(_ *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	return cfg, nil
}
