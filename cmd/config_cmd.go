package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabsplit/tabsplit/internal/cli"
	"github.com/tabsplit/tabsplit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    Service charge: %s\n", cli.FormatPercent(cfg.Defaults.ServicePercent))
	fmt.Printf("    Tip:            %s\n", cli.FormatPercent(cfg.Defaults.TipPercent))
	fmt.Println()

	fmt.Println("  [Catalog]")
	if cfg.Catalog.Disabled {
		fmt.Println("    Disabled")
	} else {
		fmt.Printf("    Database: %s\n", config.CatalogPath(cfg))
	}
	fmt.Println()

	fmt.Println("  Run `tabsplit config init` to write a config file.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config file already exists at %s", config.Path())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.Path())
	return nil
}
