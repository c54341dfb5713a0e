package bench

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/GheorgheLuca1/satkit/internal/cnf"
	"github.com/GheorgheLuca1/satkit/internal/solver"
)

// Reference decides the formula with the gini solver. It is used as an
// independent oracle to cross-check the verdicts of the toolkit's own
// engines.
func Reference(f cnf.Formula) solver.Verdict {
	g := gini.New()
	for _, c := range f {
		for _, lit := range c {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}
	switch g.Solve() {
	case 1:
		return solver.Sat
	case -1:
		return solver.Unsat
	default:
		return solver.Unknown
	}
}
