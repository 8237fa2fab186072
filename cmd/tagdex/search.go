package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagdex/internal/model"
	"tagdex/internal/picker"
	"tagdex/internal/rank"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Print ranked tag matches",
	Long: `Search tags by name, shorthand or alias and print the ranked
matches. An empty query lists every tag. With --pick an interactive
picker opens instead and the chosen tag id is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pick, _ := cmd.Flags().GetBool("pick")

		query := ""
		if len(args) == 1 {
			query = strings.TrimSpace(args[0])
		}

		ranked, _ := rank.Rank(query, lib.SearchTags(query), nil, lib.TagDisplayName)

		if pick {
			return runPicker(ranked, query)
		}

		if len(ranked) == 0 {
			fmt.Println(color.HiBlackString("no matches"))
			return nil
		}

		for _, tag := range ranked {
			line := lib.TagDisplayName(tag.ID)
			if tag.Shorthand != "" {
				line += color.HiBlackString(" (%s)", tag.Shorthand)
			}
			fmt.Println(tagColorizer(tag.Color).Sprint(line))
		}
		return nil
	},
}

func runPicker(tags []model.Tag, query string) error {
	p := tea.NewProgram(picker.New(tags, query, lib.TagDisplayName))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	final := finalModel.(picker.Picker)
	if final.Cancelled() {
		return nil
	}
	if tag := final.SelectedTag(); tag != nil {
		fmt.Println(tag.ID)
	}
	return nil
}

// tagColorizer maps the stored palette entry to terminal output.
func tagColorizer(c model.TagColor) *color.Color {
	switch c {
	case model.ColorRed:
		return color.New(color.FgRed)
	case model.ColorOrange, model.ColorYellow:
		return color.New(color.FgYellow)
	case model.ColorGreen:
		return color.New(color.FgGreen)
	case model.ColorTeal:
		return color.New(color.FgCyan)
	case model.ColorBlue:
		return color.New(color.FgBlue)
	case model.ColorPurple, model.ColorPink:
		return color.New(color.FgMagenta)
	case model.ColorGray:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.Reset)
	}
}

func init() {
	searchCmd.Flags().Bool("pick", false, "pick one match interactively and print its id")
	rootCmd.AddCommand(searchCmd)
}
