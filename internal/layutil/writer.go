// Package layutil provides output plumbing shared by the layscan
// command line tools.
package layutil

import (
	"bytes"
	"io"
)

// WriteBuffer combines a byte buffer with a destination writer,
// flushing complete lines during the main write phase and everything
// else on Flush. Example use:
//
// 	var buf WriteBuffer
// 	buf.To = os.Stdout
// 	for thing := range things {
// 		fmt.Fprint(&buf, thing)
// 		buf.MaybeFlush() // TODO errcheck
// 	}
// 	buf.Flush() // TODO errcheck
type WriteBuffer struct {
	To io.Writer
	bytes.Buffer
}

// Flush writes all of the receiver buffer contents to To.
// Should be called after the main write phase.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes buffered bytes through the last complete line to
// To, discarding them from the receiver buffer.
func (buf *WriteBuffer) MaybeFlush() error {
	b := buf.Bytes()
	i := bytes.LastIndexByte(b, '\n')
	if i < 0 {
		return nil
	}
	m, err := buf.To.Write(b[:i+1])
	buf.Next(m)
	return err
}

// ErrWriter wraps a writer, tracking its last error, and preventing
// future writes after a non-nil one.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned
// error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends the given string before
// every line written through it.
// The caller SHOULD close it if they care to flush any partial final
// line.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	var p Prefixer
	p.Buffer.To = w
	p.Prefix = prefix
	return &p
}

// Prefixer supports writing a prefix before every line written to an
// underlying writer. Create with PrefixWriter().
// Set Skip true for a one-shot "skip adding the next prefix".
type Prefixer struct {
	Prefix string
	Skip   bool
	Buffer WriteBuffer
}

// Close flushes all internally buffered bytes to the underlying
// writer.
func (p *Prefixer) Close() error { return p.Buffer.Flush() }

// Write writes bytes to the internal buffer, inserting Prefix before
// every line, and then flushes all complete lines to the underlying
// writer.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	for first := true; len(b) > 0; first = false {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		} else {
			b = nil
		}
		m, _ := p.Buffer.Write(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

// WriteString writes a string through Write.
func (p *Prefixer) WriteString(s string) (n int, err error) {
	return p.Write([]byte(s))
}

func (p *Prefixer) addPrefix() {
	if p.Skip {
		p.Skip = false
	} else {
		p.Buffer.WriteString(p.Prefix)
	}
}
