package scanlay

import "encoding/binary"

// minStackCap is the initial capacity reserved on first push; most
// files never nest deeper.
const minStackCap = 20

// Stack records the columns of the currently open layouts, outermost
// first. It is the only scanner state that survives between Scan calls:
// the host parser snapshots it at every checkpoint with Serialize and
// restores it on rewind with Deserialize.
//
// An empty stack means no implicit layout is open. Column values carry
// no ordering constraint; a nested layout may open at any column.
type Stack struct {
	cols []uint16
}

// Len returns how many layouts are currently open.
func (st *Stack) Len() int { return len(st.cols) }

// Empty reports whether no layout is open.
func (st *Stack) Empty() bool { return len(st.cols) == 0 }

// Top returns the column of the innermost open layout. Call only when
// the stack is non-empty.
func (st *Stack) Top() uint16 { return st.cols[len(st.cols)-1] }

// Push opens a layout at the given column.
func (st *Stack) Push(col uint16) {
	if st.cols == nil {
		st.cols = make([]uint16, 0, minStackCap)
	}
	st.cols = append(st.cols, col)
}

// Pop closes the innermost layout; popping an empty stack does nothing.
func (st *Stack) Pop() {
	if n := len(st.cols); n > 0 {
		st.cols = st.cols[:n-1]
	}
}

// Columns returns a copy of the open layout columns, outermost first.
func (st *Stack) Columns() []uint16 {
	if len(st.cols) == 0 {
		return nil
	}
	cols := make([]uint16, len(st.cols))
	copy(cols, st.cols)
	return cols
}

// Serialize encodes the stack, outermost first, into buf as
// little-endian 16 bit column values. It returns the number of bytes written,
// or 0 if the encoding would not fit buf; the host then treats the
// checkpoint as failed.
func (st *Stack) Serialize(buf []byte) int {
	n := 2 * len(st.cols)
	if n > len(buf) {
		return 0
	}
	for i, col := range st.cols {
		binary.LittleEndian.PutUint16(buf[2*i:], col)
	}
	return n
}

// Deserialize replaces the stack with the columns encoded in buf. An
// empty buffer leaves the stack unchanged; a host that means "reset"
// has to clear the stack itself.
func (st *Stack) Deserialize(buf []byte) {
	els := len(buf) / 2
	if els == 0 {
		return
	}
	if cap(st.cols) < els {
		st.cols = make([]uint16, els)
	}
	st.cols = st.cols[:els]
	for i := range st.cols {
		st.cols[i] = binary.LittleEndian.Uint16(buf[2*i:])
	}
}
