package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tagdex/internal/importer"
	"tagdex/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tags from a bookmarks file or backup",
	Long: `Import from a Netscape bookmarks HTML export (folder names and TAGS
attributes become tags) or from a tagdex YAML backup. The format is
chosen by file extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			return importHTML(f)
		case ".yaml", ".yml":
			return importYAML(f)
		default:
			return fmt.Errorf("unsupported format %q (want .html or .yaml)", filepath.Ext(path))
		}
	},
}

func importHTML(f *os.File) error {
	harvested, err := importer.ParseHTMLTags(f)
	if err != nil {
		return fmt.Errorf("parse bookmarks: %w", err)
	}

	added := 0
	for _, h := range harvested {
		if lib.Store().GetTagByName(h.Name) != nil {
			continue
		}
		if _, err := lib.AddTag(model.Tag{Name: h.Name}, nil, nil); err != nil {
			return fmt.Errorf("create tag %q: %w", h.Name, err)
		}
		added++
	}

	fmt.Println(color.GreenString("Imported %d tags (%d harvested)", added, len(harvested)))
	return nil
}

func importYAML(f *os.File) error {
	backup, err := importer.ParseYAML(f)
	if err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	tagsAdded, entriesAdded, err := importer.ApplyBackup(lib.Store(), backup)
	if err != nil {
		return fmt.Errorf("apply backup: %w", err)
	}
	if err := backend.Save(lib.Store()); err != nil {
		return fmt.Errorf("save library: %w", err)
	}

	fmt.Println(color.GreenString("Restored %d tags and %d entries", tagsAdded, entriesAdded))
	return nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
