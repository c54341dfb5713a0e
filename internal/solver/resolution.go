package solver

import "github.com/GheorgheLuca1/satkit/internal/cnf"

// Resolution decides satisfiability by saturating the clause set under
// binary resolution. Each outer pass scans all clause pairs in order and
// appends the first non-tautological resolvent that is not already present.
// Deriving the empty clause proves unsatisfiability; a full pass without a
// new clause means the set is closed under resolution and therefore
// satisfiable.
//
// This engine is exponential in the worst case and serves as the correctness
// baseline for the others.
func Resolution(f cnf.Formula) Verdict {
	clauses := f.Copy()
	if clauses.HasEmpty() {
		return Unsat
	}

	for {
		added := false
		for i := 0; i < len(clauses) && !added; i++ {
			for j := i + 1; j < len(clauses); j++ {
				res, ok := cnf.Resolve(clauses[i], clauses[j])
				if !ok || res.Tautology() || clauses.Contains(res) {
					continue
				}
				if len(res) == 0 {
					return Unsat
				}
				clauses = append(clauses, res)
				added = true
				break
			}
		}
		if !added {
			return Sat
		}
	}
}
