package markup

import (
	"unicode"
	"unicode/utf8"
)

type tokenizerState int

const (
	stateData tokenizerState = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttrName
	stateAttrName
	stateAfterAttrName
	stateBeforeAttrValue
	stateAttrValueDoubleQuoted
	stateAttrValueSingleQuoted
	stateAttrValueUnquoted
	stateSelfClosingStartTag
	stateBogusComment
)

// Tokenizer is a single-pass state machine over the input text. It is
// total: any input, including empty text, produces a token stream that
// ends with exactly one EOF token. Malformed input degrades into extra
// character tokens, incomplete tag names, or dropped attributes; it
// never aborts.
type Tokenizer struct {
	trace     *Trace
	state     tokenizerState
	current   *Token
	attrName  string
	attrValue string
	reconsume bool
	pos       int
}

func NewTokenizer(trace *Trace) *Tokenizer {
	if trace == nil {
		trace = NewTrace()
	}
	return &Tokenizer{trace: trace, state: stateData}
}

// Tokenize scans input and returns the token stream. A one-rune
// reconsume flag replays the current rune in the next state when a
// transition happens without consuming it.
func (t *Tokenizer) Tokenize(input string) []Token {
	t.state = stateData
	t.current = nil
	t.attrName = ""
	t.attrValue = ""
	t.reconsume = false
	t.pos = 0

	var tokens []Token
	t.trace.AddEvent(EventTokenizationStart, Details{"length": len(input)})

	for t.pos < len(input) {
		r, width := utf8.DecodeRuneInString(input[t.pos:])

		switch t.state {
		case stateData:
			if r == '<' {
				t.state = stateTagOpen
			} else {
				tokens = append(tokens, Token{Type: TokenCharacter, Data: string(r)})
			}

		case stateTagOpen:
			if r == '/' {
				t.state = stateEndTagOpen
			} else if unicode.IsLetter(r) {
				t.current = &Token{
					Type:       TokenStartTag,
					Name:       string(unicode.ToLower(r)),
					Attributes: make(map[string]string),
				}
				t.state = stateTagName
			} else {
				t.state = stateData
				t.reconsume = true
			}

		case stateEndTagOpen:
			if unicode.IsLetter(r) {
				t.current = &Token{
					Type:       TokenEndTag,
					Name:       string(unicode.ToLower(r)),
					Attributes: make(map[string]string),
				}
				t.state = stateTagName
			} else {
				t.state = stateData
			}

		case stateTagName:
			if r == '>' {
				tokens = t.emit(tokens)
				t.state = stateData
			} else if unicode.IsSpace(r) {
				t.state = stateBeforeAttrName
			} else if r == '/' {
				t.state = stateSelfClosingStartTag
			} else if t.current != nil {
				t.current.Name += string(unicode.ToLower(r))
			}

		case stateBeforeAttrName:
			if r == '>' {
				tokens = t.emit(tokens)
				t.state = stateData
			} else if r == '/' {
				t.state = stateSelfClosingStartTag
			} else if !unicode.IsSpace(r) {
				t.attrName = string(unicode.ToLower(r))
				t.state = stateAttrName
			}

		case stateAttrName:
			if r == '>' || r == '/' || unicode.IsSpace(r) {
				// Attribute with no value: boolean, empty string.
				if t.current != nil && t.attrName != "" {
					t.current.Attributes[t.attrName] = ""
				}
				t.state = stateBeforeAttrName
				t.reconsume = true
			} else if r == '=' {
				t.state = stateBeforeAttrValue
			} else {
				t.attrName += string(unicode.ToLower(r))
			}

		case stateBeforeAttrValue:
			if r == '"' {
				t.state = stateAttrValueDoubleQuoted
				t.attrValue = ""
			} else if r == '\'' {
				t.state = stateAttrValueSingleQuoted
				t.attrValue = ""
			} else if r == '>' {
				tokens = t.emit(tokens)
				t.state = stateData
			} else if !unicode.IsSpace(r) {
				t.state = stateAttrValueUnquoted
				t.attrValue = string(r)
			}

		case stateAttrValueDoubleQuoted:
			if r == '"' {
				t.finalizeAttr()
				t.state = stateBeforeAttrName
			} else {
				t.attrValue += string(r)
			}

		case stateAttrValueSingleQuoted:
			if r == '\'' {
				t.finalizeAttr()
				t.state = stateBeforeAttrName
			} else {
				t.attrValue += string(r)
			}

		case stateAttrValueUnquoted:
			if unicode.IsSpace(r) || r == '>' {
				t.finalizeAttr()
				t.state = stateBeforeAttrName
				t.reconsume = true
			} else {
				t.attrValue += string(r)
			}

		case stateSelfClosingStartTag:
			if r == '>' {
				if t.current != nil {
					t.current.SelfClosing = true
				}
				tokens = t.emit(tokens)
				t.state = stateData
			} else {
				t.state = stateBeforeAttrName
				t.reconsume = true
			}
		}

		if t.reconsume {
			t.reconsume = false
		} else {
			t.pos += width
		}
	}

	tokens = append(tokens, Token{Type: TokenEOF})
	return tokens
}

// finalizeAttr commits the pending name/value pair. Duplicate names
// within one tag overwrite: last write wins.
func (t *Tokenizer) finalizeAttr() {
	if t.current != nil && t.attrName != "" {
		t.current.Attributes[t.attrName] = t.attrValue
		t.trace.AddEvent(EventAttrParsed, Details{"name": t.attrName, "value": t.attrValue})
	}
	t.attrName = ""
	t.attrValue = ""
}

func (t *Tokenizer) emit(tokens []Token) []Token {
	if t.current == nil {
		return tokens
	}
	if IsVoidElement(t.current.Name) {
		t.current.SelfClosing = true
	}
	tokens = append(tokens, *t.current)
	t.trace.AddEvent(EventTagEmitted, Details{"name": t.current.Name})
	t.current = nil
	return tokens
}
