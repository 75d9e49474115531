package layutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/layscan/internal/layutil"
)

func TestPrefixer(t *testing.T) {
	var out strings.Builder
	p := layutil.PrefixWriter("> ", &out)

	_, err := p.WriteString("one\ntwo\npartial")
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
	assert.Equal(t, "> one\n> two\n> partial", out.String())
}

func TestPrefixer_skip(t *testing.T) {
	var out strings.Builder
	p := layutil.PrefixWriter("  ", &out)
	p.Skip = true

	_, err := p.WriteString("head\ntail\n")
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
	assert.Equal(t, "head\n  tail\n", out.String())
}

func TestWriteBuffer_maybeFlush(t *testing.T) {
	var out strings.Builder
	var buf layutil.WriteBuffer
	buf.To = &out

	buf.WriteString("whole line\nrest")
	assert.NoError(t, buf.MaybeFlush())
	assert.Equal(t, "whole line\n", out.String(), "flush through the last newline")

	assert.NoError(t, buf.Flush())
	assert.Equal(t, "whole line\nrest", out.String())
}

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func TestErrWriter(t *testing.T) {
	boom := errors.New("boom")
	ew := &layutil.ErrWriter{Writer: failWriter{boom}}

	_, err := ew.Write([]byte("x"))
	assert.Equal(t, boom, err)
	assert.Equal(t, boom, ew.Err)

	// later writes keep reporting the first error
	_, err = ew.Write([]byte("y"))
	assert.Equal(t, boom, err)
}
