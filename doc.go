// Package peck is a toolkit for building recursive-descent parsers over a
// flat, random-access buffer of homogeneous elements, with bytes as the
// archetypal element type.
//
// # Overview
//
// Parsing is layered over three capabilities:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Matcher   │────▶│  Recognize  │────▶│   Visitor   │
//	│ (predicate) │     │ (consuming) │     │ (composite) │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │  Peekable   │
//	                                        │ (lookahead) │
//	                                        └─────────────┘
//
// A Matcher is a predicate on the leading elements of a slice. Recognize
// drives a matcher against a Cursor, advancing it on a hit and leaving it
// untouched on a miss. A Visitor composes recognizers (and other visitors)
// into a value-producing consumer. A Peekable searches the remaining input
// without moving the cursor and reports where a pattern would end.
//
// # Alternatives
//
// Three builders select among registered candidates:
//
//   - Recognizer tries matchers in registration order; the first hit wins.
//   - Acceptor tries visitors in registration order; the first hit wins.
//   - Peeker tries peekables and keeps the find with the shortest body,
//     independent of registration order.
//
// The consuming builders and the peeker intentionally use different
// policies: a consumer wants the most specific pattern registered first,
// while a lookahead wants the nearest terminator whichever kind it is.
//
// # Miss versus error
//
// Every consuming operation has a three-valued outcome: hit, miss, or
// error. A miss restores the cursor and lets combinators try another
// branch; an error propagates verbatim and aborts the parse. The error
// taxonomy has exactly four kinds: ErrEndOfInput, ErrUnexpectedToken,
// ErrUTF8, and ErrInteger. The latter two are produced by the DecodeText
// and ParseInt helpers inside user visitors.
//
// # Lifetimes
//
// Cursors never copy or mutate their input. Every slice handed out by the
// library aliases the caller's buffer and remains valid for as long as
// that buffer lives, independently of the cursor that produced it.
//
// The byte-token catalogue lives in the token subpackage; a worked
// expression grammar lives in the calc subpackage.
package peck
