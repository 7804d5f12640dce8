// Package cli builds the command line: it resolves configuration from the
// JSON file, .env, PREVIEW_* environment variables and flags, sets up the
// logger and hands over to a runner.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/soocke/rti-preview/config"
)

// Runner starts the application with the resolved configuration.
type Runner func(cfg *config.Config, logger *slog.Logger) error

type options struct {
	configPath string
	envPath    string
	debug      bool
	live       bool
	camera     string
	cameraDir  string
	save       bool
}

// NewRootCmd returns the root command. Log output goes to out.
func NewRootCmd(out io.Writer, run Runner) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "rti-preview",
		Short:         "Live camera preview with a resizable selection",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, opts)
			if err != nil {
				return err
			}
			logger := NewLogger(out, cfg.Debug).With("session", uuid.NewString())
			logger.Debug("config resolved", "config", opts.configPath, "camera", cfg.Camera)
			if run == nil {
				return nil
			}
			return run(cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "config.json", "Path to JSON config file")
	f.StringVar(&opts.envPath, "env-file", ".env", "Path to .env file with PREVIEW_* overrides")
	f.BoolVarP(&opts.debug, "debug", "d", false, "Debug logging and runtime loggers")
	f.BoolVar(&opts.live, "live", false, "Start live preview immediately")
	f.StringVar(&opts.camera, "camera", "", "Camera source: screen, gdi or dir")
	f.StringVar(&opts.cameraDir, "camera-dir", "", "Directory of JPEG frames for the dir camera")
	f.BoolVar(&opts.save, "save", false, "Write the resolved config back to --config")
	return cmd
}

// resolve applies defaults, the JSON file, .env, environment and flags in
// that order. Only flags given on the command line override.
func resolve(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", opts.configPath, err)
	}
	if err := config.LoadDotenv(opts.envPath); err != nil {
		return nil, fmt.Errorf("load env file %s: %w", opts.envPath, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	f := cmd.Flags()
	if f.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if f.Changed("live") {
		cfg.StartLive = opts.live
	}
	if f.Changed("camera") {
		cfg.Camera = opts.camera
	}
	if f.Changed("camera-dir") {
		cfg.CameraDir = opts.cameraDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.save {
		if err := cfg.Save(opts.configPath); err != nil {
			return nil, fmt.Errorf("save config: %w", err)
		}
	}
	return cfg, nil
}

// NewLogger returns a structured JSON slog.Logger writing to out.
func NewLogger(out io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
