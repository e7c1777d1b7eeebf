package verify

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dhamidi/veridom/markup"
)

type OracleReport struct {
	Matches     bool   `json:"matches"`
	RefTagCount int    `json:"ref_tag_count"`
	OurTagCount int    `json:"our_tag_count"`
	Details     string `json:"details"`
}

// Compare parses input with the reference parser (golang.org/x/net/html)
// and checks that tree's pre-order tag-name sequence against the
// reference's, element for element. Both extractions skip the document
// wrapper names the two parsers synthesize (html, head, body); the
// ordered name sequences are the sole criterion, attributes and text
// are never compared.
func Compare(input string, tree *markup.TreeNode) OracleReport {
	refTags := referenceStructure(input)
	ourTags := treeStructure(tree)

	matches := len(refTags) == len(ourTags)
	if matches {
		for i := range refTags {
			if refTags[i] != ourTags[i] {
				matches = false
				break
			}
		}
	}

	details := "Structure matches reference"
	if !matches {
		details = "Structural discrepancy detected"
	}

	return OracleReport{
		Matches:     matches,
		RefTagCount: len(refTags),
		OurTagCount: len(ourTags),
		Details:     details,
	}
}

var wrapperNames = map[string]bool{
	"html": true,
	"head": true,
	"body": true,
}

func referenceStructure(input string) []string {
	// The reference parser does not fail on malformed markup; the
	// error return covers reader failures only, which a string
	// reader never produces.
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil
	}
	var tags []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && !wrapperNames[n.Data] {
			tags = append(tags, n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return tags
}

func treeStructure(node *markup.TreeNode) []string {
	if node == nil {
		return nil
	}
	var tags []string
	if !wrapperNames[node.Name] {
		tags = append(tags, node.Name)
	}
	for _, child := range node.Children {
		tags = append(tags, treeStructure(child)...)
	}
	return tags
}
