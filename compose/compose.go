// Package compose turns plain text outlines into well-formed markup:
// an intermediate item list in, a rendered document out. It feeds the
// parser in demos and stress runs.
package compose

import (
	"sort"
	"strings"
)

// Item is one element of the intermediate representation.
type Item struct {
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Content    string            `json:"content"`
}

// Outline converts text into items, one per non-blank line: lines
// starting with '#' become header divs, lines starting with '-'
// become list items, everything else becomes a paragraph.
func Outline(text string) []Item {
	var items []Item
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "#"):
			content := strings.TrimSpace(strings.TrimLeft(line, "#"))
			items = append(items, Item{
				Tag:        "div",
				Attributes: map[string]string{"class": "header"},
				Content:    content,
			})
		case strings.HasPrefix(line, "-"):
			content := strings.TrimSpace(strings.TrimLeft(line, "-"))
			items = append(items, Item{Tag: "li", Content: content})
		default:
			items = append(items, Item{Tag: "p", Content: line})
		}
	}
	return items
}

// Render turns items into a complete document, one element per item.
func Render(items []Item) string {
	var out strings.Builder
	out.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")

	for _, item := range items {
		tag := item.Tag
		if tag == "" {
			tag = "p"
		}
		out.WriteString("  <" + tag)
		for _, key := range sortedKeys(item.Attributes) {
			out.WriteString(" " + key + `="` + item.Attributes[key] + `"`)
		}
		out.WriteString(">" + item.Content + "</" + tag + ">\n")
	}

	out.WriteString("</body>\n</html>")
	return out.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
