package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"tagdex/internal/model"
)

// DefaultHTMLPath returns the default export file path.
// Format: ~/Downloads/tagdex-export-YYYY-MM-DD.html
func DefaultHTMLPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tagdex-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the library as a static tag index page: one
// section per tag, listing the entries carrying it. Reserved tags are
// included only when entries use them.
func ExportHTML(store *model.Store) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Tag Library</title>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>Tag Library</h1>\n")

	for _, tag := range sortedTags(store) {
		entries := store.EntriesWithTag(tag.ID)
		if tag.IsReserved() && len(entries) == 0 {
			continue
		}

		fmt.Fprintf(&b, "<h3>%s</h3>\n", html.EscapeString(store.DisplayName(tag.ID)))

		if aliases := store.AliasNamesForTag(tag.ID); len(aliases) > 0 {
			fmt.Fprintf(&b, "<p>Also known as: %s</p>\n", html.EscapeString(strings.Join(aliases, ", ")))
		}

		if len(entries) == 0 {
			continue
		}
		b.WriteString("<ul>\n")
		for _, e := range entries {
			if e.Path != "" {
				fmt.Fprintf(&b, "    <li><a href=\"%s\">%s</a></li>\n",
					html.EscapeString(e.Path), html.EscapeString(e.Title))
			} else {
				fmt.Fprintf(&b, "    <li>%s</li>\n", html.EscapeString(e.Title))
			}
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// sortedTags returns all tags ordered by display name, reserved tags first.
func sortedTags(store *model.Store) []model.Tag {
	tags := append([]model.Tag(nil), store.Tags...)
	sort.SliceStable(tags, func(i, j int) bool {
		ri, rj := tags[i].IsReserved(), tags[j].IsReserved()
		if ri != rj {
			return ri
		}
		return strings.ToLower(store.DisplayName(tags[i].ID)) < strings.ToLower(store.DisplayName(tags[j].ID))
	})
	return tags
}
