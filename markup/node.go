package markup

import "sort"

// RootName is the sentinel name of the synthetic root node every parse
// returns.
const RootName = "html"

// TreeNode is one node of the constructed document tree. The parent
// link is a relation, never ownership: it is unexported and excluded
// from serialization, so marshalled trees stay acyclic. Trees are
// built once per parse call and belong exclusively to the caller.
type TreeNode struct {
	Name        string
	Attributes  map[string]string
	Children    []*TreeNode
	TextContent string

	parent *TreeNode
}

func NewTreeNode(name string) *TreeNode {
	return &TreeNode{Name: name, Attributes: make(map[string]string)}
}

func (n *TreeNode) AddChild(child *TreeNode) {
	if child != nil {
		child.parent = n
		n.Children = append(n.Children, child)
	}
}

func (n *TreeNode) Parent() *TreeNode {
	return n.parent
}

// Depth reports the height of the subtree rooted at n, counting n
// itself.
func (n *TreeNode) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

// CountNodes reports the number of nodes in the subtree rooted at n,
// counting n itself.
func (n *TreeNode) CountNodes() int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Children {
		count += child.CountNodes()
	}
	return count
}

func (n *TreeNode) String() string {
	return n.stringIndent(0)
}

func (n *TreeNode) stringIndent(indent int) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + "<" + n.Name
	for _, key := range n.SortedAttributeNames() {
		result += " " + key + "=" + `"` + n.Attributes[key] + `"`
	}
	result += ">"
	if n.TextContent != "" {
		result += " " + n.TextContent
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent + 1)
	}
	return result
}

// SortedAttributeNames returns the attribute names in lexical order,
// for deterministic output.
func (n *TreeNode) SortedAttributeNames() []string {
	names := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
