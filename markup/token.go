package markup

type TokenType int

const (
	TokenDoctype TokenType = iota
	TokenStartTag
	TokenEndTag
	TokenComment
	TokenCharacter
	TokenEOF
	TokenParseError
)

var tokenTypeNames = map[TokenType]string{
	TokenDoctype:    "DOCTYPE",
	TokenStartTag:   "StartTag",
	TokenEndTag:     "EndTag",
	TokenComment:    "Comment",
	TokenCharacter:  "Character",
	TokenEOF:        "EOF",
	TokenParseError: "ParseError",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Type        TokenType
	Name        string
	Attributes  map[string]string
	SelfClosing bool
	Data        string
	ForceQuirks bool
}

// Void elements can never contain children and are forced self-closing
// at emission, whatever the source syntax said.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func IsVoidElement(name string) bool {
	return voidElements[name]
}

func (t Token) String() string {
	switch t.Type {
	case TokenCharacter:
		return "Char(" + t.Data + ")"
	case TokenStartTag:
		return "<" + t.Name + ">"
	case TokenEndTag:
		return "</" + t.Name + ">"
	}
	return t.Type.String() + "(" + t.Name + ")"
}
