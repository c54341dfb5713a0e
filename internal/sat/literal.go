package sat

import "strconv"

// Literal represents a boolean variable or its negation. Variable v maps to
// 2*v for the positive literal and 2*v+1 for the negative one, so literals
// can index slices directly and negation is a single bit flip.
type Literal int

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// Dimacs returns the literal in DIMACS convention: variables numbered from 1,
// negative values for negated variables.
func (l Literal) Dimacs() int {
	if l.IsPositive() {
		return l.VarID() + 1
	}
	return -(l.VarID() + 1)
}

func (l Literal) String() string {
	if l.IsPositive() {
		return strconv.Itoa(l.VarID())
	}
	return "!" + strconv.Itoa(l.VarID())
}
