// Package cmd implements the tabsplit CLI commands.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabsplit/tabsplit/internal/config"
	"github.com/tabsplit/tabsplit/internal/store"
	"github.com/tabsplit/tabsplit/pkg/logging"
)

var (
	flagVerbose   bool
	flagNoCatalog bool
)

var rootCmd = &cobra.Command{
	Use:   "tabsplit",
	Short: "Split a restaurant bill among diners",
	Long: "Divide a restaurant bill across diners: shared items split equally,\n" +
		"personal items attributed to whoever had them, plus service charge\n" +
		"and per-diner tips.",
	RunE: runNew,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logging.SetupWithLevel(slog.LevelDebug)
		} else {
			logging.Setup()
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoCatalog, "no-catalog", false, "Skip the saved menu/diner catalog")
}

// openCatalog opens the catalog database unless disabled by flag or
// config. A nil return with nil error means "no catalog": entry still
// works, just without prefilled prices and tips.
func openCatalog(cfg config.Config) (*store.Catalog, error) {
	if flagNoCatalog || cfg.Catalog.Disabled {
		return nil, nil
	}
	catalog, err := store.Open(config.CatalogPath(cfg))
	if err != nil {
		// The catalog is a convenience; a broken database should not
		// block splitting a bill.
		slog.Warn("catalog unavailable", "error", err)
		return nil, nil
	}
	return catalog, nil
}

// mustCatalog opens the catalog for the commands that manage it, where
// a broken database is a real failure.
func mustCatalog(cfg config.Config) (*store.Catalog, error) {
	return store.Open(config.CatalogPath(cfg))
}
