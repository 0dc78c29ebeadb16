// Package cli implements the lwcharts command-line interface.
//
// # Commands
//
//   - build: Assemble a chart definition into a wire document and publish it
//   - inspect: Show the render order of every chart's series
//   - case: Convert identifiers or document keys between snake and camel case
//   - store: Read or delete published documents
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-file for a rotated copy of the log.
//
// # Environment
//
// Store settings are read from the environment, after loading a .env file
// from the working directory when one exists:
//
//	LWCHARTS_STORE           null, memory, file, redis or mongo
//	LWCHARTS_STORE_DIR       file store directory
//	LWCHARTS_REDIS_ADDR      redis address
//	LWCHARTS_REDIS_PASSWORD  redis password
//	LWCHARTS_MONGO_URI       mongo connection URI
//	LWCHARTS_NAMESPACE       key prefix shared by all stored documents
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matzehuels/lwcharts/pkg/buildinfo"
	"github.com/matzehuels/lwcharts/pkg/pipeline"
	"github.com/matzehuels/lwcharts/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "lwcharts"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stderr  io.Writer
	logFile io.WriteCloser
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetLogFile mirrors the log into a size-rotated file at path.
func (c *CLI) SetLogFile(path string) {
	if path == "" {
		return
	}
	c.logFile = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}
	c.Logger.SetOutput(io.MultiWriter(c.stderr, c.logFile))
}

// Close releases the log file, if any.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lwcharts turns chart definitions into lightweight-charts documents",
		Long:         `lwcharts is a CLI tool for assembling TOML or YAML chart definitions into the JSON documents consumed by a lightweight-charts rendering surface, and for publishing them to a shared document store.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.caseCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the configured store.
func (c *CLI) newRunner(ctx context.Context, flags storeFlags) (*pipeline.Runner, error) {
	cfg, err := flags.config()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("opened store", "backend", cfg.Backend)
	return pipeline.NewRunner(st, newKeyer(), c.Logger), nil
}

// newKeyer scopes keys by LWCHARTS_NAMESPACE when it is set.
func newKeyer() store.Keyer {
	if ns := os.Getenv(envNamespace); ns != "" {
		return store.NewScopedKeyer(nil, ns+":")
	}
	return store.NewDefaultKeyer()
}

// =============================================================================
// Paths
// =============================================================================

// dataDir returns the file store directory using XDG standard (~/.local/share/lwcharts/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}
