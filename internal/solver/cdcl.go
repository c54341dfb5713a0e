package solver

import (
	"github.com/GheorgheLuca1/satkit/internal/cnf"
	"github.com/GheorgheLuca1/satkit/internal/sat"
)

// CDCL decides the formula with the conflict-driven engine from internal/sat
// using its default options. Variables 1..N are mapped to the engine's
// zero-based identifiers.
func CDCL(f cnf.Formula) (cnf.Assignment, Verdict) {
	return CDCLWithOptions(f, sat.DefaultOptions)
}

// CDCLWithOptions is CDCL with explicit engine options. It returns Unknown
// if the engine hits one of its stop conditions before reaching a verdict.
func CDCLWithOptions(f cnf.Formula, opts sat.Options) (cnf.Assignment, Verdict) {
	s := sat.NewSolver(opts)
	Instantiate(s, f)

	switch s.Solve() {
	case sat.True:
		asn := make(cnf.Assignment, len(s.Model))
		for i, b := range s.Model {
			asn[i+1] = b
		}
		return asn, Sat
	case sat.False:
		return nil, Unsat
	default:
		return nil, Unknown
	}
}

// Instantiate loads the formula into the given engine. The engine works on
// its own clause representation, so f is never mutated.
func Instantiate(s *sat.Solver, f cnf.Formula) {
	for n := f.NumVariables(); s.NumVariables() < n; {
		s.AddVariable()
	}
	lits := make([]sat.Literal, 0, 8)
	for _, c := range f {
		lits = lits[:0]
		for _, l := range c {
			if l < 0 {
				lits = append(lits, sat.NegativeLiteral(-l-1))
			} else {
				lits = append(lits, sat.PositiveLiteral(l-1))
			}
		}
		s.AddClause(lits)
	}
}
