// Package cli implements the vinculum CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/vinculum/internal/config"
	"github.com/rcliao/vinculum/internal/logging"
	"github.com/rcliao/vinculum/internal/store"
)

var (
	dbPath     string
	formatFlag string
	configPath string
	verbose    bool

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "vinculum",
	Short: "Roman numeral converter with vinculum notation",
	Long: "Convert between Arabic numbers and Roman numerals up to 999,999.\n" +
		"Thousands are written with the vinculum marker: _V_ is 5,000, _CM_ is 900,000.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(getConfigPath())
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Journal path (default: $VINCULUM_DB, db_path in config, or ~/.vinculum/journal.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $VINCULUM_CONFIG or ~/.vinculum/config.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("VINCULUM_CONFIG"); env != "" {
		return env
	}
	return config.DefaultPath()
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".vinculum", "journal.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// output prints v as indented JSON, or text when --format text is set.
func output(cmd *cobra.Command, v interface{}, text string) {
	if formatFlag == "text" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func exitErr(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
