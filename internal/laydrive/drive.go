// Package laydrive drives the layout scanner the way the generated
// parser would, standing in for the parse table with a shallow
// request-set heuristic. It exists for tests and the trace tools; the
// heuristic decides nothing the real parser could not override, it
// only picks which virtual symbols to offer at each position.
package laydrive

import (
	"github.com/jcorbin/layscan/internal/srclex"
	"github.com/jcorbin/layscan/scanlay"
)

// Step is one driver step: a virtual token emitted by the scanner, or
// a raw token consumed by the fallback lexer when the scanner
// declined.
type Step struct {
	Virtual bool
	Sym     scanlay.Sym // valid when Virtual
	Text    string
	Offset  int
	Depth   int // open layouts after the step
}

// Driver couples a source lexer with a scanner stack and the request
// heuristic.
type Driver struct {
	lex   *srclex.Lexer
	stack scanlay.Stack

	started   bool // anything consumed yet
	done      bool
	wantStart bool // previous token opens a layout
	allowDot  bool // previous token was a name adjacent to a dot
	itemDone  bool // a statement item just completed
	brackets  int  // open list brackets
}

// New returns a Driver over src.
func New(src string) *Driver {
	return &Driver{lex: srclex.New(src)}
}

// Stack returns a snapshot of the open layout columns.
func (d *Driver) Stack() []uint16 { return d.stack.Columns() }

// layoutKeywords open an implicit block on the token that follows.
var layoutKeywords = map[string]bool{
	"let":   true,
	"do":    true,
	"of":    true,
	"where": true,
	"cases": true,
	"with":  true,
	"then":  true,
}

// valid builds the requested-symbol set for the current position.
// Semicolon only makes sense after a completed statement item, End and
// In only while a layout is open, Comma only inside brackets, Empty
// only before anything was consumed. The set never covers the whole
// range, so it is never mistaken for the post-error set.
func (d *Driver) valid() scanlay.Valid {
	v := make(scanlay.Valid, int(scanlay.Empty)+1)
	v[scanlay.Comment] = true
	v[scanlay.Fold] = true
	if !d.stack.Empty() {
		v[scanlay.End] = true
		v[scanlay.In] = true
		v[scanlay.Semicolon] = d.itemDone
	}
	if d.wantStart {
		v[scanlay.Start] = true
	}
	if d.allowDot {
		v[scanlay.Dot] = true
		v[scanlay.Varsym] = true
	}
	if d.brackets > 0 {
		v[scanlay.Comma] = true
	}
	if !d.started {
		v[scanlay.Empty] = true
	}
	return v
}

// Next performs one step, reporting false at end of input.
func (d *Driver) Next() (Step, bool) {
	for !d.done {
		d.lex.StartToken()
		if sym, ok := scanlay.Scan(d.lex, d.valid(), &d.stack); ok {
			d.lex.ResumeAtMark()
			step := Step{
				Virtual: true,
				Sym:     sym,
				Text:    d.lex.Token().Text(),
				Offset:  d.lex.Token().Start(),
				Depth:   d.stack.Len(),
			}
			d.noteVirtual(sym)
			return step, true
		}
		d.lex.Rewind()
		if !d.lex.SkipExtra() {
			break
		}
	}

	raw, ok := d.lex.NextRaw()
	if d.done || !ok {
		d.done = true
		return Step{}, false
	}
	text := raw.Text()
	d.started = true
	d.itemDone = true
	d.wantStart = layoutKeywords[text]
	d.allowDot = isName(text) && d.lex.Peek() == '.'
	switch text {
	case "[":
		d.brackets++
	case "]":
		if d.brackets > 0 {
			d.brackets--
		}
	}
	return Step{
		Sym:    scanlay.Fail,
		Text:   text,
		Offset: raw.Start(),
		Depth:  d.stack.Len(),
	}, true
}

// noteVirtual updates the heuristic after an emitted virtual token.
// Comments are transparent: they leave the statement context alone. A
// completed layout completes the statement it ends, so End and In keep
// a semicolon on offer the way a raw token would.
func (d *Driver) noteVirtual(sym scanlay.Sym) {
	d.started = true
	switch sym {
	case scanlay.Comment:
		return
	case scanlay.Fold, scanlay.Empty:
		d.done = true
	case scanlay.Start:
		d.wantStart = false
		d.itemDone = false
	case scanlay.End, scanlay.In:
		d.itemDone = true
	default:
		d.itemDone = false
	}
	d.allowDot = false
}

func isName(s string) bool {
	if s == "" || layoutKeywords[s] {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
