package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabsplit/tabsplit/internal/cli"
	"github.com/tabsplit/tabsplit/internal/config"
	"github.com/tabsplit/tabsplit/internal/shell"
	"github.com/tabsplit/tabsplit/internal/store"
)

var dinersCmd = &cobra.Command{
	Use:   "diners",
	Short: "Manage the saved diner roster",
}

var dinersAddCmd = &cobra.Command{
	Use:   "add <name> <tip-percent>",
	Short: "Save a regular diner with their usual tip",
	Args:  cobra.ExactArgs(2),
	RunE:  runDinersAdd,
}

var dinersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved diners",
	RunE:  runDinersList,
}

var dinersRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a saved diner",
	Args:  cobra.ExactArgs(1),
	RunE:  runDinersRm,
}

func init() {
	dinersCmd.AddCommand(dinersAddCmd)
	dinersCmd.AddCommand(dinersListCmd)
	dinersCmd.AddCommand(dinersRmCmd)
	rootCmd.AddCommand(dinersCmd)
}

func runDinersAdd(_ *cobra.Command, args []string) error {
	tip, err := shell.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("tip %q: %w", args[1], err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := mustCatalog(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	if err := catalog.SaveRegular(store.Regular{Name: args[0], TipPercent: tip}); err != nil {
		return fmt.Errorf("saving regular: %w", err)
	}

	fmt.Printf("  Saved %s with %s tip\n", args[0], cli.FormatPercent(tip))
	return nil
}

func runDinersList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := mustCatalog(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	regulars, err := catalog.ListRegulars()
	if err != nil {
		return err
	}
	if len(regulars) == 0 {
		fmt.Println("\n  No saved diners. Add one with `tabsplit diners add`.")
		return nil
	}

	rows := make([][]string, 0, len(regulars))
	for _, r := range regulars {
		rows = append(rows, []string{r.Name, cli.FormatPercent(r.TipPercent)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Regulars",
		Headers: []string{"Diner", "Tip"},
		Rows:    rows,
	}))
	return nil
}

func runDinersRm(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := mustCatalog(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	if err := catalog.DeleteRegular(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", args[0])
	return nil
}
