// Package verify checks parsed trees against structural policies: a
// semantic nesting auditor, a configurable integrity verifier, and a
// differential oracle backed by a standards-grade reference parser.
// Violations are reported as data, never as errors.
package verify

import (
	"fmt"

	"github.com/dhamidi/veridom/markup"
)

// invalidNesting maps a parent tag to the child tags it must not
// contain as direct children.
var invalidNesting = map[string][]string{
	"p":  {"div", "p", "blockquote", "header", "footer", "section", "article"},
	"ul": {"p", "div"},
	"li": {"header", "footer"},
}

type AuditReport struct {
	Score      int      `json:"score"`
	Violations []string `json:"violations"`
	Status     string   `json:"status"`
}

// Audit walks the whole tree and reports one violation per forbidden
// direct parent/child pair. Score is 100 minus 10 per violation,
// floored at zero; status is PASS only for a perfect score. Only
// direct adjacency counts, not transitive nesting.
func Audit(root *markup.TreeNode) AuditReport {
	violations := []string{}
	checkNode(root, &violations)

	score := 100 - 10*len(violations)
	if score < 0 {
		score = 0
	}

	status := "PASS"
	if score != 100 {
		status = "FAIL"
	}

	return AuditReport{
		Score:      score,
		Violations: violations,
		Status:     status,
	}
}

func checkNode(node *markup.TreeNode, violations *[]string) {
	if node == nil {
		return
	}
	forbidden := invalidNesting[node.Name]
	for _, child := range node.Children {
		for _, name := range forbidden {
			if child.Name == name {
				*violations = append(*violations,
					fmt.Sprintf("Invalid nesting: <%s> inside <%s>", child.Name, node.Name))
			}
		}
	}
	for _, child := range node.Children {
		checkNode(child, violations)
	}
}
