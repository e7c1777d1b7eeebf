// Package fuzz generates randomized malformed markup for stress
// testing the parser, the implicit-closure rules, and the auditor.
package fuzz

import (
	"math/rand"
	"strings"
)

var tagNames = []string{"div", "p", "span", "b", "i", "ul", "li"}

const idLetters = "abc"

// Generator produces tag-balanced but not necessarily nesting-legal
// markup. Every opened tag is matched by exactly one later close in
// last-in-first-out order.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// WildMarkup performs a random walk of complexity steps choosing among
// opening a tag, closing the most recently opened tag, emitting text,
// or emitting a fully formed tag with a randomized id attribute. Any
// tags still open after the walk are closed in reverse order.
func (g *Generator) WildMarkup(complexity int) string {
	var out strings.Builder
	var stack []string

	for i := 0; i < complexity; i++ {
		switch g.rnd.Intn(4) {
		case 0: // open
			tag := tagNames[g.rnd.Intn(len(tagNames))]
			out.WriteString("<" + tag + ">")
			stack = append(stack, tag)
		case 1: // close
			if len(stack) > 0 {
				tag := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				out.WriteString("</" + tag + ">")
			}
		case 2: // text
			out.WriteString(" fuzzy_data ")
		case 3: // attr
			out.WriteString(`<div id="` + g.randomID(5) + `" class="test">content</div>`)
		}
	}

	for len(stack) > 0 {
		tag := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.WriteString("</" + tag + ">")
	}

	return out.String()
}

func (g *Generator) randomID(length int) string {
	var id strings.Builder
	for i := 0; i < length; i++ {
		id.WriteByte(idLetters[g.rnd.Intn(len(idLetters))])
	}
	return id.String()
}
