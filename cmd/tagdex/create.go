package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagdex/internal/model"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shorthand, _ := cmd.Flags().GetString("shorthand")
		colorName, _ := cmd.Flags().GetString("color")
		aliases, _ := cmd.Flags().GetStringSlice("alias")
		parents, _ := cmd.Flags().GetStringSlice("parent")

		tagColor, err := parseTagColor(colorName)
		if err != nil {
			return err
		}

		parentIDs := make([]int, 0, len(parents))
		for _, name := range parents {
			parent := lib.Store().GetTagByName(name)
			if parent == nil {
				return fmt.Errorf("unknown parent tag %q", name)
			}
			parentIDs = append(parentIDs, parent.ID)
		}

		id, err := lib.AddTag(model.Tag{
			Name:      args[0],
			Shorthand: shorthand,
			Color:     tagColor,
		}, parentIDs, aliases)
		if err != nil {
			return fmt.Errorf("create tag: %w", err)
		}

		fmt.Println(color.GreenString("Created %q (%d)", lib.TagDisplayName(id), id))
		return nil
	},
}

func parseTagColor(name string) (model.TagColor, error) {
	if name == "" {
		return model.ColorDefault, nil
	}
	for _, c := range model.Colors() {
		if string(c) == name {
			return c, nil
		}
	}
	return model.ColorDefault, fmt.Errorf("unknown color %q", name)
}

func init() {
	createCmd.Flags().String("shorthand", "", "short form shown next to the name")
	createCmd.Flags().String("color", "", "palette color (red, orange, yellow, green, teal, blue, purple, pink, gray)")
	createCmd.Flags().StringSlice("alias", nil, "alternate name (repeatable)")
	createCmd.Flags().StringSlice("parent", nil, "parent tag name (repeatable)")
	rootCmd.AddCommand(createCmd)
}
