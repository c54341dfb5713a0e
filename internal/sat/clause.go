package sat

import (
	"strings"
)

// Clause is a disjunction of literals together with its watched-literal
// bookkeeping. The first two literals are the watched ones: the clause is
// registered in the watch lists of their opposites, so it wakes up exactly
// when one of them becomes false.
type Clause struct {
	// The clause's literals. Always contains at least two literals.
	literals []Literal

	// Whether the clause was learnt by conflict analysis.
	learnt bool

	// Position at which the last watched-literal search stopped. Starting
	// the next search there avoids rescanning the prefix of false literals.
	// Starts at 2; when it is not below len(literals) (binary clauses, or
	// after a simplification) the next search starts at 2 again.
	prevPos int
}

// NewClause creates and watches a clause from the given literals. For
// problem clauses, duplicates and root-level-false literals are removed and
// tautological or already-satisfied clauses are dropped (nil is returned).
// Learnt clauses are taken as-is: conflict analysis already produces clean
// literal sets.
//
// The second return value is false only if the clause is empty, i.e. if the
// problem is unsatisfiable at the root. Unit clauses are not materialized;
// their literal is enqueued at the current (root) level instead.
func NewClause(s *Solver, tmpLiterals []Literal, learnt bool) (*Clause, bool) {
	size := len(tmpLiterals)

	if !learnt {
		seen := map[Literal]struct{}{}

		for i := size - 1; i >= 0; i-- {
			// If the opposite literal is in the clause, then the clause is
			// always true.
			if _, ok := seen[tmpLiterals[i].Opposite()]; ok {
				return nil, true
			}

			// Remove the literal if it is already present.
			if _, ok := seen[tmpLiterals[i]]; ok {
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
				continue
			}

			seen[tmpLiterals[i]] = struct{}{}

			switch s.LitValue(tmpLiterals[i]) {
			case True:
				return nil, true // clause is already satisfied
			case False:
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
			}
		}

		tmpLiterals = tmpLiterals[:size]
	}

	switch size {
	case 0:
		// Empty clauses cannot be valid.
		return nil, false
	case 1:
		// Directly enqueue unit facts.
		return nil, s.enqueue(tmpLiterals[0], nil)
	default:
		c := &Clause{
			learnt:   learnt,
			prevPos:  2,
			literals: make([]Literal, size),
		}
		copy(c.literals, tmpLiterals)

		if learnt {
			// The first literal is the asserted one (the UIP). The second
			// watch must sit at the backjump level, i.e. on a literal with
			// the maximum level among the remaining ones.
			maxLevel := -1
			wl := -1
			for i := 1; i < len(c.literals); i++ {
				if level := s.level[c.literals[i].VarID()]; level > maxLevel {
					maxLevel = level
					wl = i
				}
			}
			c.literals[wl], c.literals[1] = c.literals[1], c.literals[wl]
		}

		s.Watch(c, c.literals[0].Opposite(), c.literals[1])
		s.Watch(c, c.literals[1].Opposite(), c.literals[0])

		return c, true
	}
}

// locked returns true if the clause is the antecedent of its first literal.
func (c *Clause) locked(s *Solver) bool {
	return s.reason[c.literals[0].VarID()] == c
}

// Remove detaches the clause from the watch lists.
func (c *Clause) Remove(s *Solver) {
	s.Unwatch(c, c.literals[0].Opposite())
	s.Unwatch(c, c.literals[1].Opposite())
}

// Simplify removes the clause's root-level-false literals. It returns true
// if the clause is satisfied at the root level and can be discarded.
func (c *Clause) Simplify(s *Solver) bool {
	j := 0
	for _, lit := range c.literals {
		switch s.LitValue(lit) {
		case True:
			return true
		case False:
			// discard the literal.
		case Unknown:
			c.literals[j] = lit
			j++
		}
	}
	c.literals = c.literals[:j]
	return false
}

// Propagate processes the clause after watch literal l became true (i.e.
// after one of the clause's watched literals became false). It restores the
// watch invariant by promoting a non-false literal to be the new watch, or
// enqueues the remaining watched literal if the clause became unit. It
// returns false if the clause is conflicting.
func (c *Clause) Propagate(s *Solver, l Literal) bool {
	// Make sure that the falsified literal is c.literals[1], so that
	// c.literals[0] is always the literal to be potentially enqueued.
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0] = c.literals[1]
		c.literals[1] = opp
	}

	// If c.literals[0] is True, the clause is already satisfied.
	if s.LitValue(c.literals[0]) == True {
		s.Watch(c, l, c.literals[0])
		return true
	}

	// Look for a new literal to watch, starting from the position at which
	// the previous search stopped. The position can be stale after a clause
	// simplification; reset it in that case.
	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i, lit := range c.literals[c.prevPos:] {
		if s.LitValue(lit) != False {
			c.prevPos += i
			c.literals[1] = lit
			c.literals[c.prevPos] = opp
			s.Watch(c, lit.Opposite(), c.literals[0])
			return true
		}
	}
	for i, lit := range c.literals[2:c.prevPos] {
		if s.LitValue(lit) != False {
			c.prevPos = i + 2
			c.literals[1] = lit
			c.literals[c.prevPos] = opp
			s.Watch(c, lit.Opposite(), c.literals[0])
			return true
		}
	}

	// All literals in literals[1:] are false: the clause is unit (or
	// conflicting if literals[0] is false too).
	s.Watch(c, l, c.literals[0])
	return s.enqueue(c.literals[0], c)
}

// explainConflict appends to outReason the assignments that falsify the
// clause, i.e. the opposites of all its literals.
func (c *Clause) explainConflict(outReason *[]Literal) {
	exp := (*outReason)[:0]
	for _, l := range c.literals {
		exp = append(exp, l.Opposite())
	}
	*outReason = exp
}

// explainAssign appends to outReason the assignments that made the clause
// unit on its first literal.
func (c *Clause) explainAssign(outReason *[]Literal) {
	exp := (*outReason)[:0]
	for _, l := range c.literals[1:] {
		exp = append(exp, l.Opposite())
	}
	*outReason = exp
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
