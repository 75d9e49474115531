package srclex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/layscan/internal/srclex"
)

func TestLexer_cursor(t *testing.T) {
	lex := srclex.New("ab\ncd")

	assert.Equal(t, 'a', lex.Peek())
	assert.Equal(t, uint32(0), lex.Column())
	assert.False(t, lex.EOF())

	lex.Advance()
	assert.Equal(t, 'b', lex.Peek())
	assert.Equal(t, uint32(1), lex.Column())

	lex.Advance() // b
	lex.Advance() // newline resets the column
	assert.Equal(t, 'c', lex.Peek())
	assert.Equal(t, uint32(0), lex.Column())

	lex.Advance()
	lex.Advance()
	assert.Equal(t, rune(0), lex.Peek(), "peek at EOF")
	assert.True(t, lex.EOF())

	lex.Advance() // advancing at EOF is a no-op
	assert.True(t, lex.EOF())
}

func TestLexer_capture(t *testing.T) {
	lex := srclex.New("  where next")

	lex.StartToken()
	lex.Skip()
	lex.Skip()
	for i := 0; i < 5; i++ {
		lex.Advance()
	}
	lex.MarkEnd()

	// lookahead past the mark is not part of the token
	lex.Advance()

	tok := lex.Token()
	assert.Equal(t, "where", tok.Text())
	assert.Equal(t, 2, tok.Start())
	assert.Equal(t, 7, tok.End())

	lex.ResumeAtMark()
	assert.Equal(t, ' ', lex.Peek())
}

func TestLexer_defaultMark(t *testing.T) {
	lex := srclex.New(".y")
	lex.StartToken()
	lex.Advance()

	// without MarkEnd the token ends at the current position
	assert.Equal(t, ".", lex.Token().Text())
}

func TestLexer_rewind(t *testing.T) {
	lex := srclex.New("else\n")
	lex.StartToken()
	for i := 0; i < 4; i++ {
		lex.Advance()
	}

	lex.Rewind()
	assert.Equal(t, 'e', lex.Peek())
	assert.Equal(t, uint32(0), lex.Column())
	assert.True(t, lex.Token().Empty())
}

func TestLexer_skipMovesTokenStart(t *testing.T) {
	lex := srclex.New(" \n  x")
	lex.StartToken()
	lex.MarkEnd() // pin the end before consuming the line break
	for !lex.EOF() && lex.Peek() != 'x' {
		lex.Skip()
	}

	tok := lex.Token()
	assert.True(t, tok.Empty())
	assert.Equal(t, 4, tok.Start())

	lex.ResumeAtMark()
	assert.Equal(t, 0, lex.Offset(), "resume at the pinned mark")
}

func TestLexer_NextRaw(t *testing.T) {
	lex := srclex.New("foo = a.b ++ [1, 2]\n  bar'")

	var got []string
	for {
		tok, ok := lex.NextRaw()
		if !ok {
			break
		}
		got = append(got, tok.Text())
	}
	assert.Equal(t,
		[]string{"foo", "=", "a", ".", "b", "++", "[", "1", ",", "2", "]", "bar'"},
		got)
}
