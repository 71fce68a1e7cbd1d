package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/payweek/internal/config"
	"github.com/javiermolinar/payweek/internal/db"
	"github.com/javiermolinar/payweek/internal/shift"
	"github.com/javiermolinar/payweek/internal/summary"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Storage is the persistence the CLI needs: shifts in, summaries out.
type Storage interface {
	shift.Repository
	summary.Store
}

// App holds the CLI application state.
type App struct {
	store      Storage
	ownsStore  bool
	config     *config.Config
	configPath string
	logger     *zap.Logger
	root       *cobra.Command
	debug      bool
	logLevel   string
}

// NewApp creates a new CLI application with the given storage and config.
// A nil store is opened lazily from the configured database path.
func NewApp(store Storage, cfg *config.Config, configPath string) *App {
	a := &App{store: store, config: cfg, configPath: configPath, logger: zap.NewNop()}

	a.root = &cobra.Command{
		Use:   "payweek",
		Short: "Weekly payroll summaries from employee shifts",
		Long: `Payweek computes weekly payroll summaries from employee work shifts.

Shifts are grouped by employee and by pay week (Sunday midnight to Sunday
midnight in the configured time zone). Overlapping shifts are flagged as
invalid and excluded from totals, shifts crossing Sunday midnight are split
between the two weeks, and hours beyond the weekly threshold are overtime.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(a.debug, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to stderr")
	a.root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off when empty")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.summarizeCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.runCmd())
	a.root.AddCommand(a.reportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "payweek %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the storage if the app opened it.
func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.ownsStore && a.store != nil {
		return a.store.Close()
	}
	return nil
}

// ensureStore opens the configured database on first use.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	store, err := db.NewWithLogger(path, a.logger)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.store = store
	a.ownsStore = true
	return nil
}

// builder returns a summary builder for the configured zone and threshold.
func (a *App) builder() (*summary.Builder, error) {
	zone, err := a.config.Zone()
	if err != nil {
		return nil, err
	}
	return summary.NewBuilder(zone,
		summary.WithOvertimeThreshold(a.config.Payroll.OvertimeThreshold),
		summary.WithLogger(a.logger),
	), nil
}
