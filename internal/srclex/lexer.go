// Package srclex provides an in-memory host lexer for driving the
// layout scanner over source text in tests and tools. It implements
// the cursor contract the scanner expects from the real host: one code
// point of lookahead, advance with or without capture, a column query,
// and an explicit token-end mark, with re-lexing from the token start
// when a scan declines.
package srclex

import "unicode/utf8"

// Lexer is a cursor over a source string. The zero value is not
// useful; construct with New.
//
// Token capture follows the host contract: skipped characters move the
// token start forward until the first capturing advance; MarkEnd pins
// the token end, and defaults to the final position when never called;
// after an emitted token the cursor resumes from the token end, so
// characters consumed past the mark were lookahead only.
type Lexer struct {
	src string

	pos int    // byte offset of the lookahead
	col uint32 // rune column of pos within its line

	start    int    // byte offset where the current token started
	startCol uint32 // column of start
	mark     int    // byte offset of the marked token end, -1 when unset
	markCol  uint32 // column of mark

	advanced bool // a capturing advance happened since StartToken
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, mark: -1}
}

// Peek returns the next code point without consuming it, 0 at end of
// input.
func (l *Lexer) Peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	c, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return c
}

// Advance consumes one code point, including it in the current token.
func (l *Lexer) Advance() {
	l.advanced = true
	l.step()
}

// Skip consumes one code point without capturing it. Until the first
// capturing advance, skipped characters move the token start forward
// with the cursor.
func (l *Lexer) Skip() {
	l.step()
	if !l.advanced {
		l.start, l.startCol = l.pos, l.col
	}
}

func (l *Lexer) step() {
	if l.pos >= len(l.src) {
		return
	}
	c, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += w
	if c == '\n' {
		l.col = 0
	} else {
		l.col++
	}
}

// Column returns the 0-based rune column of the current position.
func (l *Lexer) Column() uint32 { return l.col }

// EOF reports whether the input is exhausted.
func (l *Lexer) EOF() bool { return l.pos >= len(l.src) }

// MarkEnd fixes the current position as the end of the token in
// progress.
func (l *Lexer) MarkEnd() {
	l.mark, l.markCol = l.pos, l.col
}

// StartToken begins a new token at the current position, clearing any
// previous mark.
func (l *Lexer) StartToken() {
	l.start, l.startCol = l.pos, l.col
	l.mark, l.markCol = -1, 0
	l.advanced = false
}

// Rewind returns the cursor to the last StartToken position, the way
// the host re-lexes from the token start after a declined scan.
func (l *Lexer) Rewind() {
	l.pos, l.col = l.start, l.startCol
	l.mark, l.markCol = -1, 0
	l.advanced = false
}

// ResumeAtMark moves the cursor back to the marked token end, the way
// the host resumes after an emitted token. Without a mark the token
// ends at the current position and there is nothing to undo.
func (l *Lexer) ResumeAtMark() {
	if l.mark >= 0 && l.mark < l.pos {
		l.pos, l.col = l.mark, l.markCol
	}
}

// Token returns a handle on the span captured between the token start
// and the marked (or defaulted) end.
func (l *Lexer) Token() Token {
	end := l.mark
	if end < 0 {
		end = l.pos
	}
	if end < l.start {
		end = l.start
	}
	return Token{src: l.src, start: l.start, end: end}
}

// Offset returns the byte offset of the current position.
func (l *Lexer) Offset() int { return l.pos }

// SkipExtra consumes a run of whitespace the way the generated lexer
// consumes extras between tokens, reporting whether it consumed
// anything.
func (l *Lexer) SkipExtra() bool {
	skipped := false
	for {
		switch l.Peek() {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			l.Skip()
			skipped = true
		default:
			return skipped
		}
	}
}

// NextRaw consumes one ordinary token the way the generated lexer
// would: an identifier or number run, a run of operator characters, or
// a single other character. Leading whitespace is skipped. It reports
// false at end of input.
func (l *Lexer) NextRaw() (Token, bool) {
	l.SkipExtra()
	l.StartToken()
	c := l.Peek()
	if c == 0 {
		return Token{}, false
	}
	switch {
	case isWordRune(c):
		for isWordRune(l.Peek()) {
			l.Advance()
		}
	case isOperatorRune(c):
		for isOperatorRune(l.Peek()) {
			l.Advance()
		}
	default:
		l.Advance()
	}
	l.MarkEnd()
	return l.Token(), true
}

func isWordRune(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '\'':
		return true
	}
	return false
}

func isOperatorRune(c rune) bool {
	switch c {
	case '!', '#', '$', '%', '&', '*', '+', '.', '/', '<', '>', '?', '^',
		':', '=', '-', '~', '@', '\\', '|':
		return true
	}
	return false
}
