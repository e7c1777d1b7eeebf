package markup

// Tags that implicitly close an open <p> element before they are
// inserted.
var blockTags = map[string]bool{
	"div":        true,
	"blockquote": true,
	"section":    true,
	"article":    true,
	"nav":        true,
	"aside":      true,
	"header":     true,
	"footer":     true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
}

// Builder turns a token stream into a document tree. It is total: any
// input, including empty or fully malformed text, produces a tree
// rooted at the synthetic root node.
type Builder struct {
	trace        *Trace
	openElements []*TreeNode
	root         *TreeNode
}

func NewBuilder(trace *Trace) *Builder {
	if trace == nil {
		trace = NewTrace()
	}
	return &Builder{trace: trace}
}

// Parse tokenizes input and builds the tree. The same trace instance
// is threaded through both passes.
func (b *Builder) Parse(input string) *TreeNode {
	tokenizer := NewTokenizer(b.trace)
	tokens := tokenizer.Tokenize(input)
	return b.Build(tokens)
}

// Build constructs the tree from an already tokenized stream.
func (b *Builder) Build(tokens []Token) *TreeNode {
	b.trace.AddEvent(EventParsingStart, Details{"token_count": len(tokens)})

	b.root = NewTreeNode(RootName)
	b.openElements = []*TreeNode{b.root}

	for _, token := range tokens {
		switch token.Type {
		case TokenEOF:
			// EOF terminates the stream.
		case TokenStartTag:
			b.processStartTag(token)
		case TokenEndTag:
			b.processEndTag(token)
		case TokenCharacter:
			b.processCharacter(token)
		}
		if token.Type == TokenEOF {
			break
		}
	}

	b.trace.AddEvent(EventParsingComplete, Details{
		"tree_depth": b.root.Depth(),
		"node_count": b.root.CountNodes(),
	})

	return b.root
}

func (b *Builder) processStartTag(token Token) {
	if blockTags[token.Name] && b.isOpen("p") {
		b.closeElement("p")
		b.trace.AddEvent(EventImplicitClose, Details{"before_tag": token.Name})
	}

	node := NewTreeNode(token.Name)
	for name, value := range token.Attributes {
		node.Attributes[name] = value
	}

	if len(b.openElements) > 0 {
		b.openElements[len(b.openElements)-1].AddChild(node)
	}

	// Self-closing and void elements never join the open-element
	// stack, so they never acquire children.
	if !token.SelfClosing {
		b.openElements = append(b.openElements, node)
	}

	b.trace.AddEvent(EventStartTagProcessed, Details{
		"tag":          token.Name,
		"attributes":   token.Attributes,
		"self_closing": token.SelfClosing,
	})
}

func (b *Builder) processEndTag(token Token) {
	if token.Name != "" {
		b.closeElement(token.Name)
	}
	b.trace.AddEvent(EventEndTagProcessed, Details{"tag": token.Name})
}

func (b *Builder) processCharacter(token Token) {
	if len(b.openElements) > 0 && token.Data != "" {
		current := b.openElements[len(b.openElements)-1]
		current.TextContent += token.Data
		b.trace.AddEvent(EventCharProcessed, Details{"char": token.Data})
	}
}

// closeElement pops the innermost open element with the given name,
// scanning from the top of the stack down. An end tag with no matching
// open element is silently ignored.
func (b *Builder) closeElement(name string) {
	for i := len(b.openElements) - 1; i >= 0; i-- {
		if b.openElements[i].Name == name {
			b.openElements = append(b.openElements[:i], b.openElements[i+1:]...)
			return
		}
	}
}

func (b *Builder) isOpen(name string) bool {
	for _, node := range b.openElements {
		if node.Name == name {
			return true
		}
	}
	return false
}
