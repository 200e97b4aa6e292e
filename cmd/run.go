package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acampos/giftwise/internal/app"
	"github.com/acampos/giftwise/internal/i18n"
	"github.com/acampos/giftwise/internal/quiz"
	"github.com/acampos/giftwise/internal/store"
)

// runApp opens the store, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	logger, err := newLogger(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging unavailable:", err)
		logger = nil
	}
	if logger != nil {
		defer logger.Sync()
	}

	st, err := store.Open(dbPath, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sess := quiz.NewSession(resolveLang(cmd))
	return app.Run(sess, st.ResultRepo(), st.PlanRepo())
}

// resolveLang picks the startup language: --lang flag, then
// GIFTWISE_LANG, then English.
func resolveLang(cmd *cobra.Command) i18n.Lang {
	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = os.Getenv("GIFTWISE_LANG")
	}
	if strings.EqualFold(lang, string(i18n.ES)) {
		return i18n.ES
	}
	return i18n.EN
}
