package scanlay

// Sym identifies a virtual token produced by the layout scanner. The
// values match the order in which the grammar declares its external
// tokens, so a Sym can be handed back to the parser unchanged.
type Sym uint16

// Sym constants for the grammar's external tokens. Fail is an internal
// sentinel, always last, and is never handed to the parser.
const (
	Semicolon Sym = iota
	Start
	End
	Dot
	Where
	Varsym
	Comment
	Fold
	Comma
	In
	Indent
	Empty
	Fail
)

var symNames = [...]string{
	"semicolon",
	"start",
	"end",
	"dot",
	"where",
	"varsym",
	"comment",
	"fold",
	"comma",
	"in",
	"indent",
	"empty",
	"fail",
}

// String returns the grammar-facing name of s.
func (s Sym) String() string {
	if int(s) < len(symNames) {
		return symNames[s]
	}
	return "invalid"
}

// Valid is the parser-provided set of symbols acceptable at the current
// position, indexed by Sym. The scanner only reads it.
type Valid []bool

func (v Valid) has(s Sym) bool { return int(s) < len(v) && v[s] }

// afterError reports whether every symbol through Empty is requested.
// The parser re-invokes the scanner with the full set directly after
// recovering from an error; scanning must decline in that case rather
// than invent a virtual token.
func (v Valid) afterError() bool {
	for s := Semicolon; s <= Empty; s++ {
		if !v.has(s) {
			return false
		}
	}
	return true
}
