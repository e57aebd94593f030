package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eatfood"
	"eatfood/config"
	"eatfood/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	dataDir    string
	tablesPath string
	verbose    bool
	noSave     bool

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	tables *eatfood.Tables
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eatfood",
	Short: "Diet tracking tools: shopping lists, meal calories, daily nutrition",
	Long: `eatfood bundles three small diet tools built on the China Food
Composition Tables:

  shopping   turn recipes into a priced, categorized shopping list
  calories   calculate the calories and macronutrients of a meal
  analyze    analyze a whole day of meals against reference intakes

Every run prints a report, writes a text report into the data directory and
records a snapshot in the history database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load()

		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dataDir != "" {
			c.DataDir = dataDir
		}
		if tablesPath != "" {
			c.TablesPath = tablesPath
		}
		if noSave {
			c.Reports = config.ReportsConfig{}
		}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = c

		logger, err = newLogger(c.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		tables, err = loadTables(c.TablesPath)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded",
			zap.String("data_dir", c.DataDir),
			zap.String("tables", c.TablesPath),
			zap.Bool("history", c.Reports.History))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if lc.Level != "" {
		level, err := zap.ParseAtomicLevel(lc.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = level
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func loadTables(path string) (*eatfood.Tables, error) {
	if path == "" {
		return eatfood.DefaultTables(), nil
	}
	t, err := eatfood.LoadTables(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	return t, nil
}

// openHistory returns nil when history is disabled or cannot be opened;
// in the latter case the failure is logged and the run continues.
func openHistory(ctx context.Context) *store.Store {
	if !cfg.Reports.History {
		return nil
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		logger.Warn("history unavailable", zap.Error(err))
		return nil
	}
	s, err := store.Open(ctx, cfg.ResolvedDBPath(), logger)
	if err != nil {
		logger.Warn("history unavailable", zap.String("path", cfg.ResolvedDBPath()), zap.Error(err))
		return nil
	}
	return s
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "eatfood.yaml", "Config file (missing file means defaults)")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Directory for reports and history (overrides config)")
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "YAML file replacing the built-in lookup tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noSave, "no-save", false, "Print only; write no files and no history")

	rootCmd.AddCommand(shoppingCmd)
	rootCmd.AddCommand(caloriesCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(tablesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
