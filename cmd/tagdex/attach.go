package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagdex/internal/tui"
)

var attachCmd = &cobra.Command{
	Use:   "attach <entry-query>",
	Short: "Attach tags to an entry",
	Long: `Fuzzy-match an entry by title, then open the tag panel in chooser
mode: every confirmed tag is attached to the entry, tags it already
carries are hidden, and the panel stays open until dismissed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := lib.SearchEntries(args[0])
		if len(results) == 0 {
			return fmt.Errorf("no entry matches %q", args[0])
		}
		entry := results[0].Entry

		app := tui.NewApp(tui.AppParams{
			Lib:     lib,
			Exclude: entry.TagIDs,
			Chooser: true,
		})

		p := tea.NewProgram(app, tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			return fmt.Errorf("run panel: %w", err)
		}

		chosen := finalModel.(tui.App).ChosenTagIDs()
		for _, tagID := range chosen {
			if err := lib.AttachTag(entry.ID, tagID); err != nil {
				return fmt.Errorf("attach tag %d: %w", tagID, err)
			}
		}

		if len(chosen) == 0 {
			fmt.Println(color.HiBlackString("No tags attached"))
			return nil
		}
		fmt.Println(color.GreenString("Attached %d tags to %q", len(chosen), entry.Title))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attachCmd)
}
