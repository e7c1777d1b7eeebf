package verify

import (
	"fmt"

	"github.com/dhamidi/veridom/markup"
)

// Limits are the caller-supplied structural bounds for Verify. There
// are no built-in defaults; both bounds must be chosen by the caller.
type Limits struct {
	MaxDepth int
	MaxNodes int
}

type IntegrityReport struct {
	Valid     bool     `json:"valid"`
	NodeCount int      `json:"node_count"`
	MaxDepth  int      `json:"max_depth"`
	Issues    []string `json:"issues"`
}

// Verify computes node count and depth in one tree walk each and
// emits one issue per violated limit.
func (l Limits) Verify(root *markup.TreeNode) IntegrityReport {
	nodeCount := root.CountNodes()
	depth := root.Depth()

	issues := []string{}
	if nodeCount > l.MaxNodes {
		issues = append(issues, fmt.Sprintf("Node count (%d) exceeds limit (%d)", nodeCount, l.MaxNodes))
	}
	if depth > l.MaxDepth {
		issues = append(issues, fmt.Sprintf("Tree depth (%d) exceeds limit (%d)", depth, l.MaxDepth))
	}

	return IntegrityReport{
		Valid:     len(issues) == 0,
		NodeCount: nodeCount,
		MaxDepth:  depth,
		Issues:    issues,
	}
}
