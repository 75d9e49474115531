package scanlay

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the stack, providing
// improved fmt.Printf display. Produces a line-per-layout verbose form
// when formatted with `%+v`.
func (st Stack) Format(f fmt.State, _ rune) {
	if len(st.cols) == 0 {
		io.WriteString(f, "empty")
		return
	}
	if f.Flag('+') {
		for i, col := range st.cols {
			fmt.Fprintf(f, "%v. %v\n", i, col)
		}
		return
	}
	for i, col := range st.cols {
		if i > 0 {
			io.WriteString(f, "-")
		}
		fmt.Fprintf(f, "%v", col)
	}
}

// Format writes the requested-symbol set as a comma separated list of
// symbol names, or "all" for the parser's post-error full set.
func (v Valid) Format(f fmt.State, _ rune) {
	if v.afterError() {
		io.WriteString(f, "all")
		return
	}
	first := true
	for s := Semicolon; s <= Empty; s++ {
		if v.has(s) {
			if !first {
				io.WriteString(f, ",")
			}
			io.WriteString(f, s.String())
			first = false
		}
	}
}
