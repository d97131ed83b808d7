// Package main provides tuibox, a collection of small terminal UI demos.
//
// Each demo is a subcommand. Running tuibox with no arguments opens the
// gallery, a list of every demo that can be launched and returned from.
//
// The data-backed demos (videos, feed) read channels and videos from a
// MongoDB view, a local sqlite snapshot of that view, or built-in sample
// data.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tuibox/internal/config"
	"github.com/muurk/tuibox/internal/demos"
	"github.com/muurk/tuibox/internal/logging"
	"github.com/muurk/tuibox/internal/version"
)

// skipConfig marks commands that must run even when the config file is broken.
const skipConfig = "skip-config"

var (
	configPath string
	logLevel   string
	altScreen  bool

	// cfg is loaded once in setup and shared by every subcommand.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tuibox",
	Short: "A box of small terminal UI demos",
	Long: `tuibox is a collection of small terminal UI demos: clocks, layouts, logs,
lists, tables, modals and a couple of data-backed browsers.

Run without arguments to open the gallery, or name a demo to run it directly.

Data-backed demos read from MongoDB (MONGO_URI), a local snapshot written by
'tuibox snapshot', or built-in sample data.`,
	Version: version.Version,
	Example: `  # Browse every demo
  tuibox

  # Run a single demo
  tuibox stopwatch

  # Browse the feed from the local snapshot with debug logging
  tuibox feed --source snapshot --log-level debug`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	SilenceUsage:       true,
	RunE:               runGallery,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Annotations: map[string]string{
		skipConfig: "true",
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tuibox %s\n", version.Full())
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the OS config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: off)")
	rootCmd.PersistentFlags().BoolVar(&altScreen, "alt-screen", true, "Run demos in the terminal's alternate screen")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup initializes logging and loads the effective configuration.
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(logLevel, logFile()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("Starting tuibox",
		zap.String("command", cmd.CommandPath()),
		zap.String("version", version.Full()))

	if cmd.Annotations[skipConfig] != "" {
		return nil
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	logging.Sync()
	return nil
}

// logFile returns TUIBOX_LOG_FILE, or tuibox.log next to the config file.
func logFile() string {
	if p := os.Getenv(logging.LogFileEnvVar); p != "" {
		return p
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tuibox.log")
}

// programOptions returns the Bubble Tea options selected by the global flags.
func programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

func runGallery(cmd *cobra.Command, args []string) error {
	return runDemo(cmd, demos.GalleryDemo())
}
