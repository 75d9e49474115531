// Package scanlay implements the layout scanner for an
// indentation-sensitive language: the context-sensitive tokens that a
// generated table-driven parser cannot express with regular lookahead.
// It tracks a stack of open layout columns and, consulted at positions
// where the parser would accept one, emits virtual semicolon, layout
// start and layout end tokens per the off-side rule, along with a
// handful of disambiguations around comments, fold markers, qualified
// dots, and the where/in/else keywords.
//
// The scanner holds no state beyond the indent Stack, which the host
// parser checkpoints and restores across incremental re-parses. A Scan
// call is a pure function of the stack, the lexer position, and the
// requested symbol set.
package scanlay

import "unicode"

// state bundles the three borrows a single scan works over: the host
// lexer, the parser's requested symbols, and the persistent indent
// stack.
type state struct {
	lex     Lexer
	valid   Valid
	indents *Stack
}

// Scan runs the layout scanner once over lex. It returns the detected
// symbol and true when a virtual token should be emitted; false means
// the position belongs to the generated lexer, whether because no rule
// applied or because a rule positively rejected it.
func Scan(lex Lexer, valid Valid, indents *Stack) (Sym, bool) {
	s := state{lex: lex, valid: valid, indents: indents}
	if res := s.scanAll(); res.finished && res.sym != Fail {
		return res.sym, true
	}
	return Fail, false
}

// Character classes.

func isWS(c rune) bool {
	switch c {
	case ' ', '\f', '\n', '\r', '\t', '\v':
		return true
	}
	return false
}

func isNewline(c rune) bool {
	switch c {
	case '\n', '\r', '\f':
		return true
	}
	return false
}

// tokenEnd reports whether c may terminate a keyword or operator token.
func tokenEnd(c rune) bool {
	switch c {
	case 0, '(', ')', '[', ']':
		return true
	}
	return isWS(c)
}

func symbolic(c rune) bool {
	switch c {
	case '!', '#', '$', '%', '&', '*', '+', '.', '/', '<', '>', '?', '^',
		':', '=', '-', '~', '@', '\\', '|':
		return true
	}
	return false
}

// Lexer access.

func (s *state) peek() rune { return s.lex.Peek() }
func (s *state) advance()   { s.lex.Advance() }
func (s *state) skip()      { s.lex.Skip() }
func (s *state) atEOF() bool { return s.lex.EOF() }

// column returns the current position's column, 0 at end of input.
func (s *state) column() uint32 {
	if s.atEOF() {
		return 0
	}
	return s.lex.Column()
}

// mark fixes the current position as the end of the detected symbol,
// so that the next run starts after it in the success case. Rules
// whose validity depends on what follows, like a layout end before a
// where, consume past the mark and leave it where it is.
func (s *state) mark() { s.lex.MarkEnd() }

func (s *state) has(sym Sym) bool { return s.valid.has(sym) }

// Conditions.

// seq consumes lit as long as it matches the lookahead, reporting
// whether all of it matched. Consumed characters are not rewound on a
// partial match; callers only use this where consuming a matched
// prefix is acceptable.
func (s *state) seq(lit string) bool {
	for _, c := range lit {
		if s.peek() != c {
			return false
		}
		s.advance()
	}
	return true
}

// token matches lit followed by a token terminator.
func (s *state) token(lit string) bool {
	return s.seq(lit) && tokenEnd(s.peek())
}

func (s *state) indentExists() bool { return !s.indents.Empty() }

// sameIndent holds when the line may start a new declaration of the
// current layout.
func (s *state) sameIndent(indent uint32) bool {
	return s.indentExists() && indent == uint32(s.indents.Top())
}

// smallerIndent holds when the current layout may be ended.
func (s *state) smallerIndent(indent uint32) bool {
	return s.indentExists() && indent < uint32(s.indents.Top())
}

func (s *state) indentLesseq(indent uint32) bool {
	return s.indentExists() && indent <= uint32(s.indents.Top())
}

func (s *state) finishIfValid(sym Sym) result {
	if s.has(sym) {
		return finish(sym)
	}
	return resCont
}

// Layout primitives.

// push opens a layout at the given indent.
func (s *state) push(indent uint32) { s.indents.Push(uint16(indent)) }

// pop closes the innermost layout, if any.
func (s *state) pop() { s.indents.Pop() }

// skipspace advances past inline whitespace, leaving newlines alone.
func (s *state) skipspace() {
	for {
		switch s.peek() {
		case ' ', '\t':
			s.skip()
		default:
			return
		}
	}
}

// layoutEnd ends the innermost layout if the parser accepts an end
// here.
func (s *state) layoutEnd() result {
	if s.has(End) {
		s.pop()
		return finish(End)
	}
	return resCont
}

// endOrSemicolon tries a layout end first, then a semicolon.
func (s *state) endOrSemicolon() result {
	if res := s.layoutEnd(); res.finished {
		return res
	}
	return s.finishIfValid(Semicolon)
}

// countIndent advances to the first nonwhite character of the next
// nonempty line, counting its indentation: spaces count one, tabs
// eight, and the count resets at every newline.
func (s *state) countIndent() uint32 {
	var indent uint32
	for {
		switch c := s.peek(); {
		case isNewline(c):
			s.skip()
			indent = 0
		case c == ' ':
			s.skip()
			indent++
		case c == '\t':
			s.skip()
			indent += 8
		default:
			return indent
		}
	}
}

// eof handles end of input. Three outcomes are valid there: the file is
// empty and the parser is still at the root rule, the current layout
// can be ended (possibly several times over consecutive runs), or a
// semicolon can close the last statement. Anything else fails.
func (s *state) eof() result {
	if s.atEOF() {
		if s.has(Empty) {
			return finish(Empty)
		}
		if res := s.endOrSemicolon(); res.finished {
			return res
		}
		return resFail
	}
	return resCont
}

// Token rules.

// dot recognizes a qualified-name dot: one that is neither preceded
// nor followed by whitespace. Absence of preceding space is guaranteed
// by running before skipspace; whether the name before it qualifies is
// the grammar's concern, represented here by Dot being requested.
//
// Since the dot is consumed either way, the alternative reading as an
// operator has to be emitted from here as well.
func (s *state) dot() result {
	if s.has(Dot) && s.peek() == '.' {
		s.advance()
		if s.has(Varsym) && unicode.IsSpace(s.peek()) {
			return finish(Varsym)
		}
		s.mark()
		return finish(Dot)
	}
	return resCont
}

// fold recognizes a file-terminating fold marker: everything from a
// literal --- through end of input becomes one token.
func (s *state) fold() result {
	if s.seq("---") {
		for !s.atEOF() {
			s.advance()
		}
		s.mark()
		return finish(Fold)
	}
	return resCont
}

// dedent ends the innermost layout when the next line is indented less
// than it.
func (s *state) dedent(indent uint32) result {
	if s.smallerIndent(indent) {
		return s.layoutEnd()
	}
	return resCont
}

// newlineSemicolon emits a semicolon when the next line lines up with
// the current layout.
func (s *state) newlineSemicolon(indent uint32) result {
	if s.has(Semicolon) && s.sameIndent(indent) {
		return finish(Semicolon)
	}
	return resCont
}

// newlineInfix would end a layout before an infix operator continuing
// the previous line's expression. The grammar currently relies on
// newlineToken failing outright for symbolic starts instead, so this
// never fires; it stays so the dispatch keeps its shape.
func (s *state) newlineInfix(indent uint32) result {
	return resCont
}

// where recognizes an inline where keyword. When the parser does not
// accept one, it instead terminates the current layout: a where on the
// same indent as, say, a do statement belongs to the enclosing
// declaration and has to end the do's layout first.
func (s *state) where() result {
	if s.token("where") {
		if s.has(Where) {
			s.mark()
			return finish(Where)
		}
		return s.layoutEnd()
	}
	return resCont
}

// in recognizes an in keyword, which closes the layout opened by the
// matching let.
func (s *state) in() result {
	if s.has(In) && s.token("in") {
		s.mark()
		s.pop()
		return finish(In)
	}
	return resCont
}

// elseToken lets an else terminate a layout opened in the body of a
// then.
func (s *state) elseToken() result {
	if s.token("else") {
		return s.layoutEnd()
	}
	return resCont
}

// inlineComment consumes the rest of the line.
func (s *state) inlineComment() result {
	for {
		if c := s.peek(); isNewline(c) || c == 0 {
			break
		}
		s.advance()
	}
	s.mark()
	return finish(Comment)
}

// minus disambiguates tokens starting with two dashes: a triple dash
// ending its line is a fold marker, a triple dash followed by anything
// else is rejected, and a plain double dash reads an inline comment.
// To be called only when the dashes cannot be a symbolic operator.
func (s *state) minus() result {
	if !s.seq("--") {
		return resCont
	}
	if s.peek() == '-' {
		s.advance()
		if s.atEOF() || isNewline(s.peek()) {
			for !s.atEOF() {
				s.advance()
			}
			s.mark()
			return finish(Fold)
		}
		return resFail
	}
	return s.inlineComment()
}

// multilineComment consumes a {- -} comment body. Those nest
// arbitrarily, so it tracks how many inner openers are pending and
// only succeeds on the closer of the outermost one. The leading {- has
// already been consumed.
func (s *state) multilineComment() result {
	level := 0
	for {
		switch s.peek() {
		case '{':
			s.advance()
			if s.peek() == '-' {
				s.advance()
				level++
			}
		case '-':
			s.advance()
			if s.peek() == '}' {
				s.advance()
				if level == 0 {
					s.mark()
					return finish(Comment)
				}
				level--
			}
		case 0:
			if res := s.eof(); res.finished {
				return res
			}
			return resFail
		default:
			s.advance()
		}
	}
}

// brace reads a block comment opener; anything else starting with a
// brace is the grammar's to parse.
func (s *state) brace() result {
	if s.peek() != '{' {
		return resFail
	}
	s.advance()
	if s.peek() != '-' {
		return resFail
	}
	s.advance()
	return s.multilineComment()
}

// comment dispatches on the two comment openers.
func (s *state) comment() result {
	switch s.peek() {
	case '-':
		if res := s.minus(); res.finished {
			return res
		}
		return resFail
	case '{':
		if res := s.brace(); res.finished {
			return res
		}
		return resFail
	}
	return resCont
}

// closeLayoutInList handles the tokens that may close a layout opened
// inside a bracketed list. A closing bracket ends the layout without
// being consumed; a comma is consumed either way, since it cannot
// start any other token here.
func (s *state) closeLayoutInList() result {
	switch s.peek() {
	case ']':
		if s.has(End) {
			s.pop()
			return finish(End)
		}
	case ',':
		s.advance()
		if s.has(Comma) {
			s.mark()
			return finish(Comma)
		}
		if res := s.layoutEnd(); res.finished {
			return res
		}
		return resFail
	}
	return resCont
}

// layoutStart opens a layout at the given column whenever the parser
// will accept one, pushing the column of the first nonwhite character
// onto the stack.
func (s *state) layoutStart(col uint32) result {
	if s.has(Start) {
		s.push(col)
		return finish(Start)
	}
	return resCont
}

// postEndSemicolon emits the semicolon an enclosing layout may still
// expect after an inner layout ended: ending the inner layout already
// advanced to the next line, so the newline rules cannot see it
// anymore.
//
// This happens with nested do layouts, where the statement after the
// inner block sits on the outer block's indent.
func (s *state) postEndSemicolon(col uint32) result {
	if s.has(Semicolon) && s.indentLesseq(col) {
		return finish(Semicolon)
	}
	return resCont
}

// repeatEnd ends further enclosing layouts closed by the same dedent
// that ended the previous one.
func (s *state) repeatEnd(col uint32) result {
	if s.has(End) && s.smallerIndent(col) {
		return s.layoutEnd()
	}
	return resCont
}

// Dispatch.

// newlineIndent applies the rules decided by the indent of the next
// line.
func (s *state) newlineIndent(indent uint32) result {
	if res := s.dedent(indent); res.finished {
		return res
	}
	if res := s.closeLayoutInList(); res.finished {
		return res
	}
	return s.newlineSemicolon(indent)
}

// newlineToken applies the rules decided by the first token on the
// next line.
func (s *state) newlineToken(indent uint32) result {
	switch c := s.peek(); {
	case c == '-':
		return s.minus()
	case symbolic(c) || c == '`':
		if res := s.newlineInfix(indent); res.finished {
			return res
		}
		return resFail
	}
	if s.peek() == 'i' {
		return s.in()
	}
	return resCont
}

// newline applies the rules that follow a line break, given the indent
// of the next nonempty line.
func (s *state) newline(indent uint32) result {
	if res := s.eof(); res.finished {
		return res
	}
	if res := s.comment(); res.finished {
		return res
	}
	if res := s.newlineToken(indent); res.finished {
		return res
	}
	return s.newlineIndent(indent)
}

// inlineTokens recognizes the keywords and punctuation the generated
// lexer cannot see past: where, in, else, a closing paren ending an of
// layout, and the list-closing tokens.
func (s *state) inlineTokens() result {
	switch s.peek() {
	case 'w':
		if res := s.where(); res.finished {
			return res
		}
		return resFail
	case 'i':
		if res := s.in(); res.finished {
			return res
		}
		return resFail
	case 'e':
		if res := s.elseToken(); res.finished {
			return res
		}
		return resFail
	case ')':
		if res := s.layoutEnd(); res.finished {
			return res
		}
		return resFail
	}
	return s.closeLayoutInList()
}

// immediate applies the rules for a token on the current line: layout
// starts, pending ends and semicolons at the same position, then the
// inline keyword and punctuation tokens.
func (s *state) immediate(col uint32) result {
	if res := s.layoutStart(col); res.finished {
		return res
	}
	if res := s.postEndSemicolon(col); res.finished {
		return res
	}
	if res := s.repeatEnd(col); res.finished {
		return res
	}
	return s.inlineTokens()
}

// init applies the rules that must see the input before whitespace is
// skipped: end of input, the post-error full symbol set, a qualified
// dot (leading space would make it an operator), and fold markers.
func (s *state) init() result {
	if res := s.eof(); res.finished {
		return res
	}
	if s.valid.afterError() {
		return resFail
	}
	if res := s.dot(); res.finished {
		return res
	}
	if s.has(Fold) {
		if res := s.fold(); res.finished {
			return res
		}
	}
	return resCont
}

// scanMain skips inline whitespace, sets the default token end, and
// branches on whether the next significant character starts a new
// line.
func (s *state) scanMain() result {
	s.skipspace()
	if res := s.eof(); res.finished {
		return res
	}
	s.mark()
	if isNewline(s.peek()) {
		s.skip()
		return s.newline(s.countIndent())
	}
	return s.immediate(s.column())
}

func (s *state) scanAll() result {
	if res := s.init(); res.finished {
		return res
	}
	return s.scanMain()
}
