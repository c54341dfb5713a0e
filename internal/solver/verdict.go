// Package solver implements the four decision procedures of the toolkit:
// naive resolution, Davis-Putnam, iterative DPLL, and CDCL. The first three
// work directly on cnf.Formula values; CDCL is backed by the watched-literal
// engine in internal/sat.
package solver

import "github.com/GheorgheLuca1/satkit/internal/cnf"

// Verdict is the outcome of a solver run.
type Verdict int8

const (
	Unknown Verdict = 0
	Sat     Verdict = 1
	Unsat   Verdict = -1
)

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Func is the common engine signature. Engines that do not produce a witness
// return a nil assignment.
type Func func(cnf.Formula) (cnf.Assignment, Verdict)

// Names lists the engines in menu order.
var Names = []string{"resolution", "dp", "dpll", "cdcl"}

// ByName returns the engine registered under the given name.
func ByName(name string) (Func, bool) {
	switch name {
	case "resolution":
		return func(f cnf.Formula) (cnf.Assignment, Verdict) {
			return nil, Resolution(f)
		}, true
	case "dp":
		return func(f cnf.Formula) (cnf.Assignment, Verdict) {
			return nil, DavisPutnam(f)
		}, true
	case "dpll":
		return DPLL, true
	case "cdcl":
		return CDCL, true
	default:
		return nil, false
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
