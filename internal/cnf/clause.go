// Package cnf provides the clause and formula primitives shared by all
// solving engines: signed-integer literals, set-like clauses, binary
// resolution, and the unit/pure literal queries used for simplification.
//
// A literal is a nonzero int whose absolute value is the variable and whose
// sign is the polarity. Clauses are kept sorted and duplicate-free so that
// they can be compared as literal sets.
package cnf

import (
	"sort"
	"strconv"
	"strings"
)

// Clause is a duplicate-free, ascending-sorted set of literals. The empty
// clause denotes FALSE.
type Clause []int

// New returns the canonical clause built from the given literals. Duplicates
// are removed and the result is sorted. Zero literals are not valid and must
// be filtered out by the caller.
func New(lits ...int) Clause {
	if len(lits) == 0 {
		return Clause{}
	}
	c := make(Clause, len(lits))
	copy(c, lits)
	sort.Ints(c)

	j := 0
	for i := 1; i < len(c); i++ {
		if c[i] != c[j] {
			j++
			c[j] = c[i]
		}
	}
	return c[:j+1]
}

// Has returns true if lit is one of the clause's literals.
func (c Clause) Has(lit int) bool {
	i := sort.SearchInts(c, lit)
	return i < len(c) && c[i] == lit
}

// Tautology returns true if the clause contains both a variable and its
// negation, i.e. if it is trivially true.
func (c Clause) Tautology() bool {
	for _, lit := range c {
		if lit > 0 {
			break // negative literals sort first
		}
		if c.Has(-lit) {
			return true
		}
	}
	return false
}

// Equal returns true if both clauses contain exactly the same literals.
func (c Clause) Equal(o Clause) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of the clause.
func (c Clause) Copy() Clause {
	cp := make(Clause, len(c))
	copy(cp, c)
	return cp
}

// String formats the clause as a DIMACS clause line: space-separated literals
// followed by the terminating 0.
func (c Clause) String() string {
	sb := strings.Builder{}
	for _, lit := range c {
		sb.WriteString(strconv.Itoa(lit))
		sb.WriteByte(' ')
	}
	sb.WriteByte('0')
	return sb.String()
}

// Parse reads a single clause line: whitespace-separated signed integers with
// an optional terminating 0. The result is canonical, so Parse(c.String())
// returns a clause equal to c. A line without literals parses to the empty
// clause; rejecting it is the loader's job.
func Parse(line string) (Clause, error) {
	fields := strings.Fields(line)
	lits := make([]int, 0, len(fields))
	for _, f := range fields {
		lit, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		if lit == 0 {
			break
		}
		lits = append(lits, lit)
	}
	return New(lits...), nil
}

// Resolve performs one binary resolution step between c1 and c2. It returns
// the resolvent for the first literal of c1 (in c1's order) whose negation
// appears in c2, or false if the clauses have no complementary pair. If more
// than one complementary pair exists the resolvent is tautological; it is
// still returned and the caller is expected to skip it.
func Resolve(c1, c2 Clause) (Clause, bool) {
	for _, lit := range c1 {
		if !c2.Has(-lit) {
			continue
		}
		lits := make([]int, 0, len(c1)+len(c2)-2)
		for _, l := range c1 {
			if l != lit {
				lits = append(lits, l)
			}
		}
		for _, l := range c2 {
			if l != -lit {
				lits = append(lits, l)
			}
		}
		return New(lits...), true
	}
	return nil, false
}
