package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagdex/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a library entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")

		entry, err := lib.AddEntry(model.NewEntryParams{
			Title: args[0],
			Path:  path,
		})
		if err != nil {
			return fmt.Errorf("add entry: %w", err)
		}

		fmt.Println(color.GreenString("Added %q (%s)", entry.Title, entry.ID[:8]))
		return nil
	},
}

func init() {
	addCmd.Flags().String("path", "", "file path or URL the entry points at")
	rootCmd.AddCommand(addCmd)
}
