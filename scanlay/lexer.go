package scanlay

// Lexer is the scanner's per-call view of the host lexer. The host owns
// tokenization of ordinary tokens; the scanner only looks ahead one
// code point at a time and decides how much of the input belongs to the
// virtual token it may emit.
//
// When a scan declines a position, the host re-lexes from the scan
// start, so characters consumed past the last MarkEnd are never
// significant.
type Lexer interface {
	// Peek returns the next code point without consuming it, 0 at end
	// of input.
	Peek() rune

	// Advance consumes one code point, including it in the token.
	Advance()

	// Skip consumes one code point, excluding it from the token.
	Skip()

	// Column returns the 0-based column of the current position.
	Column() uint32

	// EOF reports whether the input is exhausted.
	EOF() bool

	// MarkEnd fixes the current position as the end of the token in
	// progress. A successful scan emits its symbol over the span from
	// the scan start to the most recent mark.
	MarkEnd()
}
