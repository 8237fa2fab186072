package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HarvestedTag is a proposed tag name found in an import source,
// together with how often it occurred.
type HarvestedTag struct {
	Name  string
	Count int
}

// ParseHTMLTags harvests tag names from a Netscape bookmark HTML
// export: folder names (H3 headers) and comma-separated TAGS
// attributes on anchors (written by del.icio.us-style exporters).
// Names are deduplicated case-insensitively, first spelling wins,
// ordered by first appearance.
func ParseHTMLTags(r io.Reader) ([]HarvestedTag, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int) // lowercase name -> position in result
	var harvested []HarvestedTag

	record := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if pos, ok := index[key]; ok {
			harvested[pos].Count++
			return
		}
		index[key] = len(harvested)
		harvested = append(harvested, HarvestedTag{Name: name, Count: 1})
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				record(getTextContent(n))
				return // Don't recurse into H3

			case "a":
				for _, name := range strings.Split(getAttr(n, "tags"), ",") {
					record(name)
				}
				return // Don't recurse into A
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return harvested, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
