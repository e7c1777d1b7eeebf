package fuzz

import (
	"testing"

	"github.com/dhamidi/veridom/markup"
)

func TestWildMarkupBalanced(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		generator := NewGenerator(seed)
		for _, complexity := range []int{0, 1, 5, 20, 100} {
			input := generator.WildMarkup(complexity)

			var stack []string
			for _, token := range markup.Tokenize(input) {
				switch token.Type {
				case markup.TokenStartTag:
					stack = append(stack, token.Name)
				case markup.TokenEndTag:
					if len(stack) == 0 {
						t.Fatalf("seed %d: close %q with empty stack in %q", seed, token.Name, input)
					}
					top := stack[len(stack)-1]
					if top != token.Name {
						t.Fatalf("seed %d: close %q but %q is open in %q", seed, token.Name, top, input)
					}
					stack = stack[:len(stack)-1]
				}
			}
			if len(stack) != 0 {
				t.Fatalf("seed %d: unclosed tags %v in %q", seed, stack, input)
			}
		}
	}
}

func TestWildMarkupDeterministicForSeed(t *testing.T) {
	first := NewGenerator(42).WildMarkup(50)
	second := NewGenerator(42).WildMarkup(50)

	if first != second {
		t.Error("same seed produced different output")
	}
}

func TestWildMarkupParseTotality(t *testing.T) {
	generator := NewGenerator(7)
	for i := 0; i < 50; i++ {
		input := generator.WildMarkup(15)
		tree := markup.Parse(input)
		if tree == nil || tree.Name != markup.RootName {
			t.Fatalf("iteration %d: bad tree for %q", i, input)
		}
	}
}

func TestWildMarkupZeroComplexity(t *testing.T) {
	if got := NewGenerator(1).WildMarkup(0); got != "" {
		t.Errorf("WildMarkup(0) = %q, want empty", got)
	}
}
