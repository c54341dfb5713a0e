package cnf

// Assignment is a partial map from variable (always positive) to its boolean
// value.
type Assignment map[int]bool

// Copy returns an independent copy of the assignment.
func (a Assignment) Copy() Assignment {
	cp := make(Assignment, len(a))
	for v, b := range a {
		cp[v] = b
	}
	return cp
}

// ClauseSat returns true if some literal of c evaluates to true under the
// (possibly partial) assignment. Unassigned literals are treated as
// potentially true.
func ClauseSat(c Clause, asn Assignment) bool {
	for _, lit := range c {
		val, ok := asn[abs(lit)]
		if !ok || val == (lit > 0) {
			return true
		}
	}
	return false
}

// ClauseConflict returns true if every literal of c is assigned and false.
func ClauseConflict(c Clause, asn Assignment) bool {
	for _, lit := range c {
		val, ok := asn[abs(lit)]
		if !ok || val == (lit > 0) {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Formula is an ordered multiset of clauses. The order is significant only
// for tie-breaking: the unit/pure queries and the branching rules all pick
// the first candidate in formula order so that runs are reproducible.
type Formula []Clause

// Copy returns a formula sharing no clause storage with f. Engines work on
// copies so that the caller's formula is never mutated.
func (f Formula) Copy() Formula {
	cp := make(Formula, len(f))
	for i, c := range f {
		cp[i] = c.Copy()
	}
	return cp
}

// Contains returns true if some clause of f is literal-set equal to c.
func (f Formula) Contains(c Clause) bool {
	for _, o := range f {
		if c.Equal(o) {
			return true
		}
	}
	return false
}

// HasEmpty returns true if f contains the empty clause.
func (f Formula) HasEmpty() bool {
	for _, c := range f {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// NumVariables returns the largest variable occurring in f. Variables are
// assumed to be densely numbered from 1.
func (f Formula) NumVariables() int {
	n := 0
	for _, c := range f {
		for _, lit := range c {
			if v := abs(lit); v > n {
				n = v
			}
		}
	}
	return n
}

// UnitLiteral returns the literal of the first single-literal clause in
// formula order, or false if there is none.
func (f Formula) UnitLiteral() (int, bool) {
	for _, c := range f {
		if len(c) == 1 {
			return c[0], true
		}
	}
	return 0, false
}

// PureLiteral returns the first literal (clause order, then literal order)
// whose negation does not occur anywhere in f, or false if there is none.
func (f Formula) PureLiteral() (int, bool) {
	occurs := make(map[int]struct{})
	for _, c := range f {
		for _, lit := range c {
			occurs[lit] = struct{}{}
		}
	}
	for _, c := range f {
		for _, lit := range c {
			if _, ok := occurs[-lit]; !ok {
				return lit, true
			}
		}
	}
	return 0, false
}

// Propagate returns the formula obtained by assigning lit to true: clauses
// containing lit are removed and -lit is struck from the rest. It returns
// false if striking -lit produces the empty clause, i.e. if the assignment
// conflicts with f.
func (f Formula) Propagate(lit int) (Formula, bool) {
	out := make(Formula, 0, len(f))
	for _, c := range f {
		if c.Has(lit) {
			continue
		}
		if !c.Has(-lit) {
			out = append(out, c)
			continue
		}
		reduced := make(Clause, 0, len(c)-1)
		for _, l := range c {
			if l != -lit {
				reduced = append(reduced, l)
			}
		}
		if len(reduced) == 0 {
			return nil, false
		}
		out = append(out, reduced)
	}
	return out, true
}

// Sat returns true if every clause of f is satisfied under asn, with
// unassigned literals treated as potentially true.
func (f Formula) Sat(asn Assignment) bool {
	for _, c := range f {
		if !ClauseSat(c, asn) {
			return false
		}
	}
	return true
}
