package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := lib.Store()

		ids := make([]int, 0, len(store.Tags))
		for _, tag := range store.Tags {
			ids = append(ids, tag.ID)
		}
		sort.Slice(ids, func(i, j int) bool {
			return strings.ToLower(lib.TagDisplayName(ids[i])) < strings.ToLower(lib.TagDisplayName(ids[j]))
		})

		for _, id := range ids {
			tag := store.GetTagByID(id)

			line := tagColorizer(tag.Color).Sprint(lib.TagDisplayName(id))
			if aliases := store.AliasNamesForTag(id); len(aliases) > 0 {
				line += color.HiBlackString(" aka %s", strings.Join(aliases, ", "))
			}
			line += color.HiBlackString("  %d entries", len(store.EntriesWithTag(id)))
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
