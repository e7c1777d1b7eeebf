package markup

import "encoding/json"

// Serialized is the wire form of a tree: plain records with no parent
// links, safe to transfer across the sandbox boundary.
type Serialized struct {
	Name        string            `json:"name"`
	Attributes  map[string]string `json:"attributes"`
	TextContent string            `json:"text_content"`
	Children    []*Serialized     `json:"children"`
}

func (n *TreeNode) Serialize() *Serialized {
	if n == nil {
		return nil
	}
	attrs := n.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	s := &Serialized{
		Name:        n.Name,
		Attributes:  attrs,
		TextContent: n.TextContent,
		Children:    make([]*Serialized, len(n.Children)),
	}
	for i, child := range n.Children {
		s.Children[i] = child.Serialize()
	}
	return s
}

// FromSerialized rebuilds a tree from its wire form, restoring parent
// links.
func FromSerialized(s *Serialized) *TreeNode {
	if s == nil {
		return nil
	}
	node := &TreeNode{
		Name:        s.Name,
		Attributes:  s.Attributes,
		TextContent: s.TextContent,
	}
	if node.Attributes == nil {
		node.Attributes = make(map[string]string)
	}
	for _, child := range s.Children {
		node.AddChild(FromSerialized(child))
	}
	return node
}

func (n *TreeNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Serialize())
}

type jsonToken struct {
	Type        string            `json:"type"`
	Name        string            `json:"name,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	SelfClosing bool              `json:"self_closing"`
	Data        string            `json:"data,omitempty"`
	ForceQuirks bool              `json:"force_quirks"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonToken{
		Type:        t.Type.String(),
		Name:        t.Name,
		Attributes:  t.Attributes,
		SelfClosing: t.SelfClosing,
		Data:        t.Data,
		ForceQuirks: t.ForceQuirks,
	})
}
