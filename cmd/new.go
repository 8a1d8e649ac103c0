package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tabsplit/tabsplit/internal/bill"
	"github.com/tabsplit/tabsplit/internal/cli"
	"github.com/tabsplit/tabsplit/internal/config"
	"github.com/tabsplit/tabsplit/internal/shell"
)

var flagReview bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Enter a bill interactively and split it",
	RunE:  runNew,
}

func init() {
	newCmd.Flags().BoolVar(&flagReview, "review", false, "Browse the result in an interactive review screen")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	catalog, err := openCatalog(cfg)
	if err != nil {
		return err
	}
	if catalog != nil {
		defer catalog.Close()
	}

	splitter, err := shell.Run(shell.Options{
		DefaultServicePercent: cfg.Defaults.ServicePercent,
		DefaultTipPercent:     cfg.Defaults.TipPercent,
		Catalog:               catalog,
	})
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Cancelled.")
			return nil
		}
		return err
	}

	return presentBill(splitter)
}

// presentBill renders the computed bill, either as the static report or
// in the review screen.
func presentBill(splitter *bill.Splitter) error {
	if flagReview {
		return runReview(splitter)
	}

	report, err := cli.RenderReport(splitter)
	if err != nil {
		return err
	}
	fmt.Print(report)
	return nil
}
