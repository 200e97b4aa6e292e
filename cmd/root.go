package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/acampos/giftwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "giftwise",
	Short: "Spiritual gifts questionnaire and development plan",
	Long: "Giftwise is a bilingual (EN/ES) terminal app: take the spiritual gifts\n" +
		"questionnaire, see your ranked gifts, and build a ministry development\n" +
		"plan that is saved per email.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GIFTWISE_DB env var)")
	rootCmd.PersistentFlags().String("lang", "", "Interface language: en or es (default en, or GIFTWISE_LANG)")

	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GIFTWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the file logger. The TUI owns the terminal, so log
// output goes next to the database file; GIFTWISE_DEBUG raises the
// level.
func newLogger(dbPath string) (*zap.Logger, error) {
	logPath := dbPath + ".log"

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}
	if os.Getenv("GIFTWISE_DEBUG") != "" {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}
