package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/muurk/tuibox/internal/config"
	"github.com/muurk/tuibox/internal/demos"
	"github.com/muurk/tuibox/internal/feed"
	"github.com/muurk/tuibox/internal/store"
	"github.com/muurk/tuibox/internal/ui"
	"github.com/muurk/tuibox/internal/urls"
)

var (
	sourceFlag string
	uriFlag    string
	viewFlag   string
	forceInit  bool
)

// dataDemos take the --source, --uri and --view flags.
var dataDemos = map[string]bool{
	"videos": true,
	"feed":   true,
}

var galleryCmd = &cobra.Command{
	Use:   demos.GalleryName,
	Short: "Browse and launch every demo (default)",
	Long: `Open a list of every demo. Enter launches the selected demo; quitting the
demo returns to the list and shows its exit value, if any.`,
	Args: cobra.NoArgs,
	RunE: runGallery,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Copy the configured view into the local snapshot",
	Long: `Fetch every channel and video from the configured MongoDB view and write them
to the local sqlite snapshot, replacing what was there.

The feed and videos demos can then run offline with --source snapshot. While
the feed demo runs from the snapshot, re-running this command reloads it.`,
	Example: `  # Snapshot the default view
  tuibox snapshot

  # Snapshot a different view
  tuibox snapshot --view latest_50

  # Write the built-in sample data, handy for trying the feed offline
  tuibox snapshot --source sample`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the MongoDB connection and the local snapshot",
	Long: `Ping MongoDB and open the local snapshot concurrently, then report on both.

An unset MONGO_URI or a snapshot that was never written are reported as
warnings. Anything else that fails makes the command exit non-zero.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tuibox config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Long: `Write a config file with default values to --config, or to config.yaml in the
OS config directory. An existing file is only replaced after confirmation,
or with --force.`,
	Args: cobra.NoArgs,
	Annotations: map[string]string{
		skipConfig: "true",
	},
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file, .env and environment variables
have been applied. The MongoDB password is masked.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	for _, d := range demos.Demos() {
		rootCmd.AddCommand(demoCommand(d))
	}

	// The gallery can launch the data demos, so it takes their flags too.
	addDataFlags(rootCmd)
	addDataFlags(galleryCmd)
	addDataFlags(snapshotCmd)
	addDataFlags(doctorCmd)

	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing config file without asking")
	configCmd.AddCommand(configInitCmd, configShowCmd)

	rootCmd.AddCommand(galleryCmd, snapshotCmd, doctorCmd, configCmd)
}

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sourceFlag, "source", "", "Data source: mongo, snapshot or sample (default: mongo when MONGO_URI is set, else the snapshot if written, else sample)")
	cmd.Flags().StringVar(&uriFlag, "uri", "", "MongoDB connection string (overrides MONGO_URI)")
	cmd.Flags().StringVar(&viewFlag, "view", "", "MongoDB view to read (overrides the config file)")
}

func demoCommand(d demos.Demo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   d.Name,
		Short: d.Description,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, d)
		},
	}
	if dataDemos[d.Name] {
		addDataFlags(cmd)
	}
	return cmd
}

// runDemo runs d full screen and prints its exit value, if any.
func runDemo(cmd *cobra.Command, d demos.Demo) error {
	src, err := dataSource(cfg)
	if err != nil {
		return err
	}

	value, err := demos.Run(cmd.Context(), d, demos.NewEnv(cfg, src), programOptions()...)
	if value != "" {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return err
}

// dataSource applies the data flags to c and picks the store to read from.
func dataSource(c *config.Config) (store.Source, error) {
	if uriFlag != "" {
		c.Mongo.URI = uriFlag
	}
	if viewFlag != "" {
		c.Mongo.View = viewFlag
	}
	if sourceFlag != "" {
		return store.ParseSource(sourceFlag)
	}
	return defaultSource(c), nil
}

func defaultSource(c *config.Config) store.Source {
	if c.Mongo.URI != "" {
		return store.SourceMongo
	}
	if _, err := os.Stat(c.Snapshot.Path); err == nil {
		return store.SourceSnapshot
	}
	return store.SourceSample
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	src, err := dataSource(cfg)
	if err != nil {
		return err
	}
	if sourceFlag == "" {
		src = store.SourceMongo
	}
	if src == store.SourceSnapshot {
		return errors.New("the snapshot cannot be its own source; use --source mongo or --source sample")
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Snapshot",
		Command: "tuibox snapshot",
		Params: map[string]string{
			"Source":   string(src),
			"View":     cfg.Mongo.Database + "." + cfg.Mongo.View,
			"Snapshot": cfg.Snapshot.Path,
		},
		StepNames:    []string{"Open source", "Fetch channels", "Write snapshot"},
		Output:       cmd.OutOrStdout(),
		Troubleshoot: store.Troubleshooting,
	})

	return runner.Run(cmd.Context(), func(ctx context.Context, onStep ui.StepCallback) (map[string]string, error) {
		return writeSnapshot(ctx, cfg, src, onStep)
	})
}

// writeSnapshot copies every channel from src into the snapshot at
// c.Snapshot.Path.
func writeSnapshot(ctx context.Context, c *config.Config, src store.Source, onStep ui.StepCallback) (map[string]string, error) {
	onStep(1, "", ui.StepRunning, string(src))
	source, err := store.Open(ctx, c, src)
	if err != nil {
		onStep(1, "", ui.StepFailed, err.Error())
		return nil, err
	}
	defer source.Close()
	onStep(1, "", ui.StepComplete, string(src))

	onStep(2, "", ui.StepRunning, "")
	channels, err := source.Channels(ctx)
	if err != nil {
		onStep(2, "", ui.StepFailed, err.Error())
		return nil, err
	}
	videos := countVideos(channels)
	onStep(2, "", ui.StepComplete, fmt.Sprintf("%d channels, %d videos", len(channels), videos))

	onStep(3, "", ui.StepRunning, c.Snapshot.Path)
	snap, err := store.OpenSnapshot(ctx, c.Snapshot.Path)
	if err != nil {
		onStep(3, "", ui.StepFailed, err.Error())
		return nil, err
	}
	defer snap.Close()
	if err := snap.Save(ctx, channels); err != nil {
		onStep(3, "", ui.StepFailed, err.Error())
		return nil, err
	}
	onStep(3, "", ui.StepComplete, c.Snapshot.Path)

	return map[string]string{
		"Channels": strconv.Itoa(len(channels)),
		"Videos":   strconv.Itoa(videos),
		"Path":     c.Snapshot.Path,
	}, nil
}

func countVideos(channels []feed.Channel) int {
	n := 0
	for _, ch := range channels {
		n += len(ch.Videos)
	}
	return n
}

// checkResult is one doctor check. A warning is reported but does not fail
// the command.
type checkResult struct {
	name    string
	details map[string]string
	warning bool
	err     error
}

func runDoctor(cmd *cobra.Command, args []string) error {
	if _, err := dataSource(cfg); err != nil {
		return err
	}

	results := diagnose(cmd.Context(), cfg)

	printer := ui.NewPrinter(cmd.OutOrStdout())
	failed := 0
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			printer.PrintError(r.name, r.err, store.Troubleshooting(r.err))
		case r.warning:
			printer.PrintWarning(r.name, r.details)
		default:
			printer.PrintSuccess(r.name, r.details)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

// diagnose runs every check concurrently. Results keep a fixed order.
func diagnose(ctx context.Context, c *config.Config) []checkResult {
	checks := []func(context.Context, *config.Config) checkResult{
		checkMongo,
		checkSnapshot,
	}

	results := make([]checkResult, len(checks))
	var g errgroup.Group
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check(ctx, c)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func checkMongo(ctx context.Context, c *config.Config) checkResult {
	r := checkResult{name: "MongoDB"}
	if c.Mongo.URI == "" {
		r.warning = true
		r.details = map[string]string{
			"Status": "MONGO_URI is not set",
			"Hint":   "Export MONGO_URI or add it to a .env file",
		}
		return r
	}

	start := time.Now()
	m, err := store.OpenMongo(ctx, c.Mongo)
	if err != nil {
		r.err = err
		return r
	}
	defer m.Close()
	latency := time.Since(start)

	channels, err := m.Channels(ctx)
	if err != nil {
		r.err = err
		return r
	}

	r.details = map[string]string{
		"URI":      c.Redacted().Mongo.URI,
		"View":     c.Mongo.Database + "." + c.Mongo.View,
		"Channels": strconv.Itoa(len(channels)),
		"Latency":  latency.Round(time.Millisecond).String(),
	}
	if len(channels) == 0 {
		r.warning = true
		r.details["Hint"] = "The view is empty or missing: " + urls.MongoViews
	}
	return r
}

func checkSnapshot(ctx context.Context, c *config.Config) checkResult {
	r := checkResult{name: "Snapshot"}
	path := c.Snapshot.Path

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		r.warning = true
		r.details = map[string]string{
			"Path":   path,
			"Status": "not written yet",
			"Hint":   "Run: tuibox snapshot",
		}
		return r
	}

	snap, err := store.OpenSnapshot(ctx, path)
	if err != nil {
		r.err = err
		return r
	}
	defer snap.Close()

	savedAt, err := snap.SavedAt(ctx)
	if errors.Is(err, store.ErrNotFound) {
		r.warning = true
		r.details = map[string]string{
			"Path":   path,
			"Status": "empty",
			"Hint":   "Run: tuibox snapshot",
		}
		return r
	}
	if err != nil {
		r.err = err
		return r
	}

	channels, err := snap.Channels(ctx)
	if err != nil {
		r.err = err
		return r
	}

	r.details = map[string]string{
		"Path":     path,
		"Saved":    savedAt.Local().Format(time.DateTime),
		"Channels": strconv.Itoa(len(channels)),
		"Videos":   strconv.Itoa(countVideos(channels)),
	}
	return r
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if _, err := os.Stat(path); err == nil && !forceInit {
		warnings := []string{
			path + " already exists",
			"Its contents will be replaced with default values",
		}
		if !printer.Confirm(cmd.InOrStdin(), "Overwrite config file", warnings, "overwrite") {
			return nil
		}
	}

	if err := config.New().Save(path); err != nil {
		return err
	}
	printer.PrintSuccess("Config written", map[string]string{"Path": path})
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	ui.NewPrinter(cmd.OutOrStdout()).PrintOutput("Effective configuration", string(data))
	return nil
}
