package markup

import "time"

// Tokenize scans input and returns its token stream. It never fails;
// the stream always ends with exactly one EOF token.
func Tokenize(input string) []Token {
	return NewTokenizer(nil).Tokenize(input)
}

// Parse builds the document tree for input. It never fails; the worst
// input yields a tree holding only the synthetic root.
func Parse(input string) *TreeNode {
	return NewBuilder(nil).Parse(input)
}

// TraceResult carries everything one traced parse produced: the raw
// token stream, the serialized tree, and the trace summary.
type TraceResult struct {
	Tokens []Token      `json:"tokens"`
	Tree   *Serialized  `json:"tree"`
	Trace  TraceSummary `json:"trace"`
}

type TraceSummary struct {
	Events   []Event       `json:"events"`
	Errors   []string      `json:"errors"`
	Duration time.Duration `json:"duration"`
}

// ParseWithTrace tokenizes and parses input, recording both passes
// into one trace.
func ParseWithTrace(input string) *TraceResult {
	trace := NewTrace()

	tokenizer := NewTokenizer(trace)
	tokens := tokenizer.Tokenize(input)

	builder := NewBuilder(trace)
	tree := builder.Build(tokens)

	trace.Finalize()

	errors := trace.Errors
	if errors == nil {
		errors = []string{}
	}

	return &TraceResult{
		Tokens: tokens,
		Tree:   tree.Serialize(),
		Trace: TraceSummary{
			Events:   trace.Events,
			Errors:   errors,
			Duration: trace.Duration(),
		},
	}
}
