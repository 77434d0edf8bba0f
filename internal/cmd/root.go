// Package cmd implements the mlr command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/modulair/modulair/internal/config"
	"github.com/modulair/modulair/internal/identity"
	"github.com/modulair/modulair/internal/metadata"
	"github.com/modulair/modulair/internal/style"
)

// Command group IDs for help output.
const (
	GroupQuery = "query"
	GroupAdmin = "admin"
)

var rootCmd = &cobra.Command{
	Use:   "mlr",
	Short: "ModuLair virtual environment manager",
	Long: `ModuLair tracks virtual environments on shared scratch storage.

Your own environments live under $SCRATCH/virtual_envs; each of your
groups may share environments under the group storage root. mlr shows
the merged view and lets you inspect or remove entries.

Examples:
  mlr list                  # All environments you can see
  mlr which cuda12          # Who owns an environment
  mlr path cuda12           # Filesystem location
  mlr remove old-env        # Drop an environment from its metadata`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupRun()
	},
}

var (
	flagDebug  bool   // --debug: verbose logging to stderr
	flagConfig string // --config: alternate config file

	logger = zap.NewNop()
)

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: GroupAdmin, Title: "Admin Commands:"},
	)

	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.config/modulair/config.toml)")
}

// setupRun prepares logging and color handling before any command.
func setupRun() error {
	if flagDebug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("initializing debug logger: %w", err)
		}
		logger = l
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Must happen before the first render; lipgloss caches the
	// detected color profile.
	style.SetMode(cfg.Color)
	return nil
}

// loadConfig loads the tool config from --config or the default path.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.Path()
	}
	return config.Load(path)
}

// newStore resolves identity and config and builds the metadata store.
func newStore() (*metadata.Store, *identity.Identity, error) {
	id, err := identity.Resolve()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	s := metadata.New(id, cfg)
	s.SetLogger(logger)
	return s, id, nil
}

// printNotices renders group-metadata warnings to stderr.
func printNotices(notices []metadata.Notice) {
	for _, n := range notices {
		fmt.Fprintf(os.Stderr, "%s %s\n", style.WarningPrefix(), n.Message)
		if flagDebug && n.Err != nil {
			fmt.Fprintf(os.Stderr, "  %s\n", style.Dim.Render(n.Err.Error()))
		}
	}
}

// Execute runs the root command. The logger is flushed before the
// process exits; os.Exit skips deferred calls.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix(), err)
		os.Exit(1)
	}
}
