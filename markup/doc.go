// Package markup implements a simplified, error-tolerant markup parser:
// a character-level tokenizer, a tree builder with implicit element
// closure, a per-call execution trace, and read-only tree queries.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│  Tokenizer  │────▶│   Builder   │
//	│  (string)   │     │  (tokens)   │     │   (tree)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                           │                   │
//	                           └───────┬───────────┘
//	                                   ▼
//	                            ┌─────────────┐
//	                            │    Trace    │
//	                            └─────────────┘
//
// Both passes are total functions: no input, however malformed or
// deeply nested, makes them fail. Lexical irregularities are
// normalized silently into character tokens, truncated names, or
// dropped attributes. Tag and attribute names are lowercased at
// collection time; attribute values and character data keep their
// original case.
//
// The tokenizer and builder are strictly single-threaded. One Trace
// belongs to one parse call; independent parses may run concurrently
// from multiple goroutines without coordination because no package
// state is shared.
package markup
