package scanlay

// result is the three-way outcome of a single scan rule: pass control
// to the next rule, finish the scan with a symbol, or fail the scan
// outright. The discriminant is the finished flag, not the symbol: the
// Fail symbol doubles as the sentinel carried by a continue.
type result struct {
	sym      Sym
	finished bool
}

var (
	resCont = result{sym: Fail}
	resFail = result{sym: Fail, finished: true}
)

func finish(s Sym) result { return result{sym: s, finished: true} }
