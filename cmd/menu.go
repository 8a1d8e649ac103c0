package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabsplit/tabsplit/internal/cli"
	"github.com/tabsplit/tabsplit/internal/config"
	"github.com/tabsplit/tabsplit/internal/shell"
	"github.com/tabsplit/tabsplit/internal/store"
)

var flagMenuShared bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the saved menu catalog",
}

var menuAddCmd = &cobra.Command{
	Use:   "add <name> <price>",
	Short: "Save a menu item",
	Args:  cobra.ExactArgs(2),
	RunE:  runMenuAdd,
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved menu items",
	RunE:  runMenuList,
}

var menuRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a saved menu item",
	Args:  cobra.ExactArgs(1),
	RunE:  runMenuRm,
}

func init() {
	menuAddCmd.Flags().BoolVar(&flagMenuShared, "shared", false, "Pool the item's cost across all diners")
	menuCmd.AddCommand(menuAddCmd)
	menuCmd.AddCommand(menuListCmd)
	menuCmd.AddCommand(menuRmCmd)
	rootCmd.AddCommand(menuCmd)
}

func runMenuAdd(_ *cobra.Command, args []string) error {
	price, err := shell.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("price %q: %w", args[1], err)
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

	entry := store.MenuEntry{Name: args[0], Price: price, Shared: flagMenuShared}
	if err := catalog.SaveMenuEntry(entry); err != nil {
		return fmt.Errorf("saving menu entry: %w", err)
	}

	fmt.Printf("  Saved %s at %s\n", entry.Name, cli.FormatMoney(entry.Price))
	return nil
}

func runMenuList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := mustCatalog(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	entries, err := catalog.ListMenuEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  No saved menu items. Add one with `tabsplit menu add`.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		kind := "personal"
		if e.Shared {
			kind = "shared"
		}
		rows = append(rows, []string{e.Name, cli.FormatMoney(e.Price), kind})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved menu",
		Headers: []string{"Item", "Price", "Kind"},
		Rows:    rows,
	}))
	return nil
}

func runMenuRm(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	catalog, err := mustCatalog(cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	if err := catalog.DeleteMenuEntry(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed %s\n", args[0])
	return nil
}
