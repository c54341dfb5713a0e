package solver

import "github.com/GheorgheLuca1/satkit/internal/cnf"

// frame is one node of the DPLL search tree: the residual formula and the
// partial assignment that produced it.
type frame struct {
	formula cnf.Formula
	asn     cnf.Assignment
}

// DPLL runs an iterative depth-first search with an explicit frame stack.
// Each frame is simplified by alternating unit propagation and pure-literal
// elimination until a fixpoint, then split on the first literal of the first
// remaining clause. The true branch is pushed last so it is explored first.
// An empty residual formula is satisfiable and the accumulated assignment is
// returned as witness; an exhausted stack means unsatisfiable.
func DPLL(f cnf.Formula) (cnf.Assignment, Verdict) {
	// Propagation never produces the empty clause (a conflict discards the
	// frame instead), so only the input can contain one.
	if f.HasEmpty() {
		return nil, Unsat
	}

	stack := []frame{{formula: f.Copy(), asn: cnf.Assignment{}}}

	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		formula, asn, ok := simplify(fr.formula, fr.asn)
		if !ok {
			continue // local conflict, frame discarded
		}
		if len(formula) == 0 {
			return asn, Sat
		}

		lit := formula[0][0]
		if nf, ok := formula.Propagate(-lit); ok {
			stack = append(stack, frame{formula: nf, asn: assign(asn, -lit)})
		}
		if nf, ok := formula.Propagate(lit); ok {
			stack = append(stack, frame{formula: nf, asn: assign(asn, lit)})
		}
	}

	return nil, Unsat
}

// simplify applies unit propagation and one pure-literal pass, alternating
// until neither changes the formula. It returns false if propagation derives
// the empty clause.
func simplify(formula cnf.Formula, asn cnf.Assignment) (cnf.Formula, cnf.Assignment, bool) {
	for changed := true; changed; {
		changed = false

		for {
			lit, ok := formula.UnitLiteral()
			if !ok {
				break
			}
			asn[abs(lit)] = lit > 0
			next, ok := formula.Propagate(lit)
			if !ok {
				return nil, nil, false
			}
			formula = next
			changed = true
		}

		if lit, ok := formula.PureLiteral(); ok {
			asn[abs(lit)] = lit > 0
			kept := formula[:0]
			for _, c := range formula {
				if !c.Has(lit) {
					kept = append(kept, c)
				}
			}
			formula = kept
			changed = true
		}
	}
	return formula, asn, true
}

// assign returns a copy of asn extended with lit set to true.
func assign(asn cnf.Assignment, lit int) cnf.Assignment {
	cp := asn.Copy()
	cp[abs(lit)] = lit > 0
	return cp
}
