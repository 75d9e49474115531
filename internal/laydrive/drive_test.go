package laydrive_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/layscan/internal/laydrive"
	"github.com/jcorbin/layscan/scanlay"
)

func Example() {
	d := laydrive.New("foo = do\n  ping\n  pong\nbar = 1")
	for {
		step, ok := d.Next()
		if !ok {
			break
		}
		if step.Virtual {
			fmt.Printf("@%v %v depth=%v\n", step.Offset, step.Sym, step.Depth)
		} else {
			fmt.Printf("@%v raw %q\n", step.Offset, step.Text)
		}
	}
	fmt.Printf("final stack: %v\n", d.Stack())

	// Output:
	// @0 raw "foo"
	// @4 raw "="
	// @6 raw "do"
	// @11 start depth=1
	// @11 raw "ping"
	// @18 semicolon depth=1
	// @18 raw "pong"
	// @23 end depth=0
	// @23 raw "bar"
	// @27 raw "="
	// @29 raw "1"
	// final stack: []
}

func collect(src string) (steps []laydrive.Step) {
	d := laydrive.New(src)
	for limit := 10000; ; limit-- {
		if limit < 0 {
			panic("drive loop limit exceeded")
		}
		step, ok := d.Next()
		if !ok {
			return steps
		}
		steps = append(steps, step)
	}
}

func TestDriver_letIn(t *testing.T) {
	got := collect("let\n  x = 1\nin x")
	want := []laydrive.Step{
		{Text: "let", Sym: scanlay.Fail},
		{Virtual: true, Sym: scanlay.Start, Offset: 6, Depth: 1},
		{Text: "x", Sym: scanlay.Fail, Offset: 6, Depth: 1},
		{Text: "=", Sym: scanlay.Fail, Offset: 8, Depth: 1},
		{Text: "1", Sym: scanlay.Fail, Offset: 10, Depth: 1},
		{Virtual: true, Sym: scanlay.In, Text: "in", Offset: 12},
		{Text: "x", Sym: scanlay.Fail, Offset: 15},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected steps (-want +got):\n%s", diff)
	}
}

func TestDriver_qualifiedDot(t *testing.T) {
	got := collect("a.b c")
	want := []laydrive.Step{
		{Text: "a", Sym: scanlay.Fail},
		{Virtual: true, Sym: scanlay.Dot, Text: ".", Offset: 1},
		{Text: "b", Sym: scanlay.Fail, Offset: 2},
		{Text: "c", Sym: scanlay.Fail, Offset: 4},
	}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("unexpected steps (-got +want):\n%s", diff)
	}
}

func TestDriver_foldStopsTheScan(t *testing.T) {
	got := collect("x\n---\nsecret")
	want := []laydrive.Step{
		{Text: "x", Sym: scanlay.Fail},
		{Virtual: true, Sym: scanlay.Fold, Text: "---\nsecret", Offset: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected steps (-want +got):\n%s", diff)
	}
}

func TestDriver_commentIsTransparent(t *testing.T) {
	got := collect("do\n  a\n  -- note\n  b")
	var syms []scanlay.Sym
	var texts []string
	for _, step := range got {
		if step.Virtual {
			syms = append(syms, step.Sym)
		} else {
			texts = append(texts, step.Text)
		}
	}
	// the comment outranks the newline rules, so statement a's
	// semicolon lands on the line break after it
	assert.Equal(t, []scanlay.Sym{
		scanlay.Start,
		scanlay.Comment,
		scanlay.Semicolon,
		scanlay.End,
	}, syms)
	assert.Equal(t, []string{"do", "a", "b"}, texts)
}

func TestDriver_emptyInput(t *testing.T) {
	got := collect("")
	want := []laydrive.Step{
		{Virtual: true, Sym: scanlay.Empty},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected steps (-want +got):\n%s", diff)
	}
}
