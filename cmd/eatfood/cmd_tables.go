package main

import (
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the active lookup tables as YAML",
	Long: `Prints units, prices, categories, foods and reference intakes as
YAML. Edit the output and pass it back with --tables to change any of them.`,
	RunE: runTables,
}

func runTables(cmd *cobra.Command, args []string) error {
	data, err := tables.Dump()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
