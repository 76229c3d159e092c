// Package cli implements the whiteboard command-line interface.
//
// This package provides commands for placing elements on session canvases,
// inspecting canvas reports, rendering snapshots, and serving the HTTP API.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - place: Add a single shape or text element to a session
//   - connect: Join two existing elements by index
//   - flowchart / mindmap: Add composite element groups
//   - report: Describe the canvas for the content-generation step
//   - render: Export a session as SVG, PNG, or DOT
//   - serve: Run the HTTP API
//   - session: List, show, and clear sessions
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cptiwari20/ai-learning-sub000/pkg/board"
	"github.com/cptiwari20/ai-learning-sub000/pkg/buildinfo"
	"github.com/cptiwari20/ai-learning-sub000/pkg/cache"
	"github.com/cptiwari20/ai-learning-sub000/pkg/layout"
	"github.com/cptiwari20/ai-learning-sub000/pkg/session"
)

// appName is the application name used for directories and display.
const appName = "whiteboard"

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

	// Persistent flag values.
	configPath  string
	storeKind   string
	sessionsDir string
	redisAddr   string
	mongoURI    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Whiteboard places diagram elements on shared canvases",
		Long:         `Whiteboard is the placement engine for an incrementally drawn shared canvas: it decides where new shapes, labels and connectors go without ever overlapping previously placed content.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file overriding placement tunables")
	root.PersistentFlags().StringVar(&c.storeKind, "store", "file", "session store backend: file, memory, redis, mongo")
	root.PersistentFlags().StringVar(&c.sessionsDir, "sessions-dir", "", "directory for the file store (default: ~/.config/whiteboard/sessions)")
	root.PersistentFlags().StringVar(&c.redisAddr, "redis-addr", "localhost:6379", "redis address for --store=redis")
	root.PersistentFlags().StringVar(&c.mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongo URI for --store=mongo")

	// Register all subcommands
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.connectCommand())
	root.AddCommand(c.flowchartCommand())
	root.AddCommand(c.mindmapCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.sessionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// loadConfig resolves the placement configuration, applying TOML overrides
// when --config is set.
func (c *CLI) loadConfig() (layout.Config, error) {
	if c.configPath == "" {
		return layout.DefaultConfig(), nil
	}
	return layout.LoadConfig(c.configPath)
}

// newEngine creates a placement engine for CLI use.
func (c *CLI) newEngine() (*board.Engine, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	return board.New(cfg, c.Logger), nil
}

// newStore creates the session store selected by --store.
func (c *CLI) newStore(ctx context.Context) (session.Store, error) {
	switch c.storeKind {
	case "file":
		return session.NewFileStore(c.sessionsDir)
	case "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		return session.NewRedisStore(ctx, session.RedisConfig{Addr: c.redisAddr})
	case "mongo":
		return session.NewMongoStore(ctx, session.MongoConfig{URI: c.mongoURI})
	default:
		return nil, fmt.Errorf("unknown store backend: %q", c.storeKind)
	}
}

// newCache creates the render artifact cache.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/whiteboard/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
