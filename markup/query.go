package markup

// SelectByID returns the first node in pre-order whose id attribute
// equals id, or nil if none matches.
func SelectByID(root *TreeNode, id string) *TreeNode {
	if root == nil {
		return nil
	}
	if value, ok := root.Attributes["id"]; ok && value == id {
		return root
	}
	for _, child := range root.Children {
		if result := SelectByID(child, id); result != nil {
			return result
		}
	}
	return nil
}

// SelectByTag returns all nodes with the given tag name, in pre-order.
func SelectByTag(root *TreeNode, name string) []*TreeNode {
	if root == nil {
		return nil
	}
	var results []*TreeNode
	if root.Name == name {
		results = append(results, root)
	}
	for _, child := range root.Children {
		results = append(results, SelectByTag(child, name)...)
	}
	return results
}
