package solver

import "github.com/GheorgheLuca1/satkit/internal/cnf"

// DavisPutnam interleaves unit propagation and pure-literal elimination with
// a single resolution step per outer round. The round's resolution step scans
// clause pairs in order and appends the first new non-tautological resolvent,
// so the clause set grows by at most one clause per round and the procedure
// terminates: either the empty clause appears (UNSATISFIABLE), the clause set
// empties out (SATISFIABLE), or a round makes no progress, in which case the
// set is saturated without the empty clause and thus satisfiable.
func DavisPutnam(f cnf.Formula) Verdict {
	clauses := f.Copy()

	for !clauses.HasEmpty() && len(clauses) > 0 {
		progress := false

		// Unit propagation to convergence.
		for {
			lit, ok := clauses.UnitLiteral()
			if !ok {
				break
			}
			progress = true
			next, ok := clauses.Propagate(lit)
			if !ok {
				return Unsat
			}
			clauses = next
		}
		if clauses.HasEmpty() || len(clauses) == 0 {
			break
		}

		// Pure-literal elimination to convergence.
		for {
			lit, ok := clauses.PureLiteral()
			if !ok {
				break
			}
			progress = true
			kept := clauses[:0]
			for _, c := range clauses {
				if !c.Has(lit) {
					kept = append(kept, c)
				}
			}
			clauses = kept
		}
		if clauses.HasEmpty() || len(clauses) == 0 {
			break
		}

		// One resolution step.
		if res, ok := resolveStep(clauses); ok {
			if len(res) == 0 {
				return Unsat
			}
			clauses = append(clauses, res)
			progress = true
		}

		if !progress {
			return Sat // saturated without the empty clause
		}
	}

	if clauses.HasEmpty() {
		return Unsat
	}
	return Sat
}

// resolveStep returns the first new non-tautological resolvent produced by
// any clause pair, scanning pairs in order.
func resolveStep(clauses cnf.Formula) (cnf.Clause, bool) {
	for i := 0; i < len(clauses); i++ {
		for j := i + 1; j < len(clauses); j++ {
			res, ok := cnf.Resolve(clauses[i], clauses[j])
			if ok && !res.Tautology() && !clauses.Contains(res) {
				return res, true
			}
		}
	}
	return nil, false
}
