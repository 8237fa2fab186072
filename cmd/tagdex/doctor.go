package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagdex/internal/doctor"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check library integrity",
	Long: `Scan the library for referential problems: dangling parent and
disambiguation references, orphaned aliases, entries carrying unknown
tag ids, duplicate names, and parent cycles.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		findings := doctor.Check(lib.Store())
		if len(findings) == 0 {
			fmt.Println(color.GreenString("✓ No problems found"))
			return nil
		}

		for _, group := range doctor.GroupFindings(findings) {
			fmt.Println(color.New(color.FgRed, color.Bold).Sprintf("%s (%d)", group.Label, len(group.Findings)))
			fmt.Println(color.HiBlackString("  %s", group.Description))
			for _, f := range group.Findings {
				fmt.Printf("  - %s\n", f.Message)
			}
			fmt.Println()
		}

		return fmt.Errorf("%d problems found", len(findings))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
