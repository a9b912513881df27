// Package cli implements the senda command-line interface: offline analysis
// of messages and clinical-scale operations against the same engine the
// service embeds.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sendasalud/senda/internal/config"
	"github.com/sendasalud/senda/internal/detection"
	"github.com/sendasalud/senda/internal/detection/cache"
	"github.com/sendasalud/senda/internal/detection/scales"
	"github.com/sendasalud/senda/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// cliContextKey is the context key for CLIContext.
type cliContextKey struct{}

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	Verbose      bool
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	Service      *detection.Service
	Scales       *scales.Engine
	OutputFormat string
}

// NewRootCommand creates the root cobra command with global flags and
// subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "senda",
		Short: "Senda CLI — composite psychological-signal detection for Spanish text",
		Long: "Senda analyzes Spanish-language wellness messages: intent, topic and\n" +
			"urgency classification, seven psychological signal detectors, and\n" +
			"PHQ-9/GAD-7 clinical scale auto-scoring.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return persistentPreRun(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: ./senda.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "json", "output format (json, text)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newAnalyzeCmd(),
		newScalesCmd(),
	)

	return cmd
}

// persistentPreRun loads config, builds the logger and the engines, and
// stores the CLIContext.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := initConfig(opts)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger, err := logging.NewLogger(logging.LogConfig{
		Level:  level,
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	engine := detection.NewEngine(
		detection.Config{MaxDistortionInputLen: cfg.Detection.MaxDistortionInputLen},
		detection.WithLogger(logger.Named("detection")),
	)
	analysisCache := cache.New(cache.Config{
		TTL:              cfg.Cache.TTL,
		Capacity:         cfg.Cache.Capacity,
		EvictionFraction: cfg.Cache.EvictionFraction,
		KeyPrefixLen:     cfg.Cache.KeyPrefixLen,
	})
	scaleEngine := scales.NewEngine(scales.Config{
		Cooldown:              cfg.Scales.Cooldown,
		LookbackWindow:        cfg.Scales.LookbackWindow,
		OfferIntensity:        cfg.Scales.OfferIntensity,
		HighPriorityIntensity: cfg.Scales.HighPriorityIntensity,
		HistoryWindow:         cfg.Scales.HistoryWindow,
	}, scales.WithLogger(logger.Named("scales")))

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		Service:      detection.NewService(engine, analysisCache),
		Scales:       scaleEngine,
		OutputFormat: opts.OutputFormat,
	}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// initConfig loads configuration with priority: flag > default paths > env.
func initConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}

	searchPaths := []string{"./senda.yaml"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(homeDir, ".senda", "config.yaml"))
	}
	searchPaths = append(searchPaths, "/etc/senda/config.yaml")

	for _, p := range searchPaths {
		if _, statErr := os.Stat(p); statErr == nil {
			return config.Load(p)
		}
	}
	return config.LoadFromEnv()
}

// GetCLIContext extracts CLIContext from a cobra command's context.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, fmt.Errorf("CLI context not initialized")
	}
	return cliCtx, nil
}

// Execute is the main entry point for the CLI application.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err.Error())
		return err
	}
	return nil
}

// PrintResult outputs data in the configured format.
func PrintResult(cmd *cobra.Command, data interface{}) error {
	format := "json"
	if cliCtx, err := GetCLIContext(cmd); err == nil {
		format = cliCtx.OutputFormat
	}

	switch strings.ToLower(format) {
	case "text":
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", data)
		return nil
	default:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
}
