package srclex

// Token is a handle on a range of the source text.
type Token struct {
	src        string
	start, end int
}

// Text returns the token's source text.
func (t Token) Text() string { return t.src[t.start:t.end] }

// Empty reports whether the token spans no bytes.
func (t Token) Empty() bool { return t.end <= t.start }

// Start returns the token's starting byte offset.
func (t Token) Start() int { return t.start }

// End returns the token's ending byte offset.
func (t Token) End() int { return t.end }
