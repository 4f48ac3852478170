// Package commands implements the CLI for medianame.
package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/medianame/internal/config"
	"github.com/thoreinstein/medianame/internal/errors"
	"github.com/thoreinstein/medianame/internal/logging"
	"github.com/thoreinstein/medianame/internal/paths"
	"github.com/thoreinstein/medianame/internal/rename"
	"github.com/thoreinstein/medianame/internal/walk"
	"github.com/thoreinstein/medianame/pkg/fileutil"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// dryRun holds the value of the --dry-run flag.
var dryRun bool

// ignoreDirs holds the value of the --ignore-dirs flag.
var ignoreDirs []string

// logPath holds the value of the --log flag.
var logPath string

// reportPath holds the value of the --report flag.
var reportPath string

// configFile holds the value of the --config flag.
var configFile string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logSink is the run log file, opened once at startup and closed after
// the walk finishes.
var logSink *os.File

// cfg is the loaded configuration, populated before the run.
var cfg *config.Config

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"compute and log intended renames without touching the filesystem")
	rootCmd.Flags().StringSliceVar(&ignoreDirs, "ignore-dirs", nil,
		"directory basenames to exclude from traversal and renaming")
	rootCmd.Flags().StringVar(&logPath, "log", "",
		"path to the log file (default \""+config.DefaultLogFile+"\")")
	rootCmd.Flags().StringVar(&reportPath, "report", "",
		"write a YAML run summary to this path")
	rootCmd.Flags().StringVar(&configFile, "config", "",
		"explicit config file (default: config.yaml in . or the XDG config home)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase terminal verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error terminal output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"terminal log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("medianame version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "medianame DIRECTORY",
	Short: "Normalize media library names to the \"Title (Year)\" convention",
	Long: `medianame walks a media library tree and renames files and
directories to the canonical "Title (Year)" form, stripping release
group tags, codec markers and separator noise along the way.

Hidden entries, ignored directories and metadata sidecar files are
skipped. Failed renames are logged and never abort the run. Use
--dry-run to preview every intended rename without changing anything.`,
	Example: `  # Preview what would be renamed
  medianame --dry-run /mnt/media/movies

  # Rename for real, skipping extras folders
  medianame --ignore-dirs Extras,Featurettes /mnt/media/movies

  # Keep the log somewhere specific and write a run summary
  medianame --log /var/log/medianame.log --report run.yaml /mnt/media/movies`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		return setupLogging(cmd)
	},
	RunE: runRename,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logSink != nil {
			logSink.Close()
			logSink = nil
		}
	},
}

// loadConfig initializes viper and loads the optional config file.
func loadConfig() error {
	config.Init()

	loaded, err := config.Load(configFile)
	if err != nil {
		return errors.NewUserError(err, "Check the config file syntax")
	}
	cfg = loaded
	return nil
}

// setupLogging wires the two log sinks together: a TTY handler on
// stderr whose level follows -v/-q, and a JSON handler appending to the
// run log file at Info level so every operational message lands there.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	level := logging.LevelFromVerbosity(verbosity)
	if quiet {
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	file := logPath
	if file == "" {
		file = cfg.LogFile
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return errors.NewUserError(err, "failed to open log file")
	}
	logSink = f

	// File output uses JSON format, always at Info so skips, no-ops,
	// previews and renames are all recorded there.
	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(logging.NewMultiHandler(primaryHandler, fileHandler))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// runReport is the YAML shape of the optional --report summary.
type runReport struct {
	Root      string           `yaml:"root"`
	DryRun    bool             `yaml:"dry_run"`
	Renamed   int              `yaml:"renamed"`
	Skipped   int              `yaml:"skipped"`
	Unchanged int              `yaml:"unchanged"`
	Failed    int              `yaml:"failed"`
	Failures  []rename.Failure `yaml:"failures,omitempty"`
}

func runRename(cmd *cobra.Command, args []string) error {
	root := args[0]
	logger := logging.FromContext(cmd.Context())

	info, err := os.Stat(root)
	if err != nil {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrRootNotFound, "%s", root),
			"Check the directory path")
	}
	if !info.IsDir() {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotDirectory, "%s", root),
			"Pass the library root directory, not a file")
	}

	allIgnored := append(append([]string{}, cfg.IgnoreDirs...), ignoreDirs...)

	r := rename.New(logger,
		rename.WithDryRun(dryRun),
		rename.WithIgnoreDirs(allIgnored),
		rename.WithIgnoreExtensions(cfg.IgnoreExtensions),
	)

	logger.Info("starting renaming process", "root", root)
	if dryRun {
		logger.Info("running in dry-run mode, no changes will be made")
	}

	if err := walk.Walk(root, r, logger); err != nil {
		return errors.NewUserError(err, "Check that the directory is readable")
	}

	stats := r.Stats()
	logger.Info("renaming process completed",
		"renamed", stats.Renamed,
		"skipped", stats.Skipped,
		"unchanged", stats.Unchanged,
		"failed", stats.Failed,
	)

	if reportPath != "" {
		report := runReport{
			Root:      root,
			DryRun:    dryRun,
			Renamed:   stats.Renamed,
			Skipped:   stats.Skipped,
			Unchanged: stats.Unchanged,
			Failed:    stats.Failed,
			Failures:  stats.Failures,
		}
		if err := paths.EnsureDir(filepath.Dir(reportPath), 0o755); err != nil {
			return errors.NewSystemError(err, "Check that the report path is writable")
		}
		if err := fileutil.AtomicWriteYAML(reportPath, report); err != nil {
			return errors.NewSystemError(err, "Check that the report path is writable")
		}
	}

	// Per-entity failures are recorded, not surfaced: the walk ran to
	// completion, so the process exits 0.
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
