package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tabsplit/tabsplit/internal/billfile"
)

var fileCmd = &cobra.Command{
	Use:   "file <bill.toml>",
	Short: "Split a bill described in a TOML file",
	Long: "Compute a bill non-interactively. The file lists the service charge,\n" +
		"items, diners, and which personal items each diner takes.",
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	fileCmd.Flags().BoolVar(&flagReview, "review", false, "Browse the result in an interactive review screen")
	rootCmd.AddCommand(fileCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	f, err := billfile.Load(args[0])
	if err != nil {
		return err
	}

	splitter, err := billfile.Build(f)
	if err != nil {
		return err
	}

	return presentBill(splitter)
}
