package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagdex/internal/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the tag library",
	Long: `Export the library as an HTML tag index page or a YAML backup.
Without a path the file lands in ~/Downloads with a dated name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		var (
			data []byte
			path string
			err  error
		)

		switch format {
		case "html":
			data = []byte(exporter.ExportHTML(lib.Store()))
		case "yaml":
			data, err = exporter.ExportYAML(lib.Store())
			if err != nil {
				return fmt.Errorf("build backup: %w", err)
			}
		default:
			return fmt.Errorf("unknown format %q (want html or yaml)", format)
		}

		if len(args) == 1 {
			path = args[0]
		} else {
			if format == "html" {
				path, err = exporter.DefaultHTMLPath()
			} else {
				path, err = exporter.DefaultYAMLPath()
			}
			if err != nil {
				return err
			}
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Println(color.GreenString("Exported to %s", path))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "html", "export format: html or yaml")
	rootCmd.AddCommand(exportCmd)
}
