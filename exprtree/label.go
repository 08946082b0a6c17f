package exprtree

import "strconv"

// A Label identifies the kind of a node in an addition
// expression.
//
// The numeric values follow the fixed alphabet order
// {"+", "0", ..., "9", "succ", "root"}, so a Label can be
// used directly as an index into one-hot vectors.
type Label int

const (
	Add Label = iota
	Zero
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Succ
	Root
)

// AlphabetSize is the number of distinct labels.
const AlphabetSize = 13

// NumeralLabel returns the label for a decimal digit.
// It panics if d is not in [0, 9].
func NumeralLabel(d int) Label {
	if d < 0 || d > 9 {
		panic("digit out of range: " + strconv.Itoa(d))
	}
	return Zero + Label(d)
}

// IsNumeral reports whether l is one of "0" through "9".
func (l Label) IsNumeral() bool {
	return l >= Zero && l <= Nine
}

// Digit returns the numeral value of l.
// It panics if l is not a numeral.
func (l Label) Digit() int {
	if !l.IsNumeral() {
		panic("not a numeral: " + l.String())
	}
	return int(l - Zero)
}

// Arity returns the number of children a node with this
// label has in a well-formed tree.
func (l Label) Arity() int {
	switch l {
	case Add:
		return 2
	case Succ, Root:
		return 1
	default:
		return 0
	}
}

// String returns the label's name in the alphabet.
func (l Label) String() string {
	switch {
	case l == Add:
		return "+"
	case l.IsNumeral():
		return strconv.Itoa(l.Digit())
	case l == Succ:
		return "succ"
	case l == Root:
		return "root"
	}
	return "invalid(" + strconv.Itoa(int(l)) + ")"
}

// ParseLabel maps a name from the alphabet back to its
// Label. The second return value indicates success.
func ParseLabel(s string) (Label, bool) {
	switch s {
	case "+":
		return Add, true
	case "succ":
		return Succ, true
	case "root":
		return Root, true
	}
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return NumeralLabel(int(s[0] - '0')), true
	}
	return 0, false
}
