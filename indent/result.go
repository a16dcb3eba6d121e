package indent

import "fmt"

// Result is the indentation detected in a document. The zero value means no
// indentation was found.
type Result struct {
	amount int
	indent string
	kind   Kind
}

func newResult(amount int, kind Kind) Result {
	if amount <= 0 {
		return Result{}
	}
	return Result{amount: amount, indent: kind.Repeat(amount), kind: kind}
}

// Amount is the number of repeated characters in one indentation level.
func (r Result) Amount() int {
	return r.amount
}

// Indent is the literal indentation unit, e.g. "    " or "\t".
func (r Result) Indent() string {
	return r.indent
}

// Kind reports the unit's character kind. ok is false when Amount is 0.
func (r Result) Kind() (kind Kind, ok bool) {
	return r.kind, r.amount > 0
}

func (r Result) String() string {
	if r.amount == 0 {
		return "none"
	}
	return fmt.Sprintf("%d %s(s)", r.amount, r.kind)
}
