package solver

import (
	"testing"

	"github.com/GheorgheLuca1/satkit/internal/cnf"
)

// scenarios is the shared verdict table. Every engine must agree on each of
// these formulas.
var scenarios = []struct {
	desc    string
	formula cnf.Formula
	want    Verdict
}{
	{
		desc:    "single unit",
		formula: cnf.Formula{cnf.New(1)},
		want:    Sat,
	},
	{
		desc:    "contradicting units",
		formula: cnf.Formula{cnf.New(1), cnf.New(-1)},
		want:    Unsat,
	},
	{
		desc: "all sign combinations over two variables",
		formula: cnf.Formula{
			cnf.New(1, 2), cnf.New(-1, 2), cnf.New(1, -2), cnf.New(-1, -2),
		},
		want: Unsat,
	},
	{
		desc: "chained implications to a dead end",
		formula: cnf.Formula{
			cnf.New(1, 2, 3), cnf.New(-1, 2), cnf.New(-2, 3), cnf.New(-3),
		},
		want: Unsat,
	},
	{
		desc: "implication cycle",
		formula: cnf.Formula{
			cnf.New(1, -2), cnf.New(2, -3), cnf.New(3, -1),
		},
		want: Sat,
	},
	{
		desc: "implication chain",
		formula: cnf.Formula{
			cnf.New(1, 2), cnf.New(-2, 3), cnf.New(-3, 4),
		},
		want: Sat,
	},
	{
		desc:    "empty formula",
		formula: cnf.Formula{},
		want:    Sat,
	},
}

func TestEngines_scenarios(t *testing.T) {
	for _, name := range Names {
		engine, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q): engine not registered", name)
		}
		t.Run(name, func(t *testing.T) {
			for _, tc := range scenarios {
				t.Run(tc.desc, func(t *testing.T) {
					asn, got := engine(tc.formula)
					if got != tc.want {
						t.Errorf("verdict = %s, want %s", got, tc.want)
					}
					if got == Sat && asn != nil && !tc.formula.Sat(asn) {
						t.Errorf("witness %v does not satisfy the formula", asn)
					}
				})
			}
		})
	}
}

func TestEngines_doNotMutateInput(t *testing.T) {
	formula := cnf.Formula{cnf.New(1, 2), cnf.New(-1, 2), cnf.New(-2, 3)}
	want := formula.Copy()

	for _, name := range Names {
		engine, _ := ByName(name)
		engine(formula)
		for i := range formula {
			if !formula[i].Equal(want[i]) {
				t.Fatalf("%s mutated the input formula: %v", name, formula)
			}
		}
	}
}

func TestEngines_deterministic(t *testing.T) {
	formula := cnf.Formula{
		cnf.New(1, 2, 3), cnf.New(-1, -2), cnf.New(-2, -3),
		cnf.New(-1, -3), cnf.New(1, -2, 3),
	}
	for _, name := range Names {
		engine, _ := ByName(name)
		_, first := engine(formula)
		for i := 0; i < 3; i++ {
			if _, got := engine(formula); got != first {
				t.Fatalf("%s: verdict changed between runs: %s then %s", name, first, got)
			}
		}
	}
}

func TestDPLL_witness(t *testing.T) {
	formula := cnf.Formula{cnf.New(1, -2), cnf.New(2, -3), cnf.New(3, -1)}
	asn, verdict := DPLL(formula)
	if verdict != Sat {
		t.Fatalf("verdict = %s, want %s", verdict, Sat)
	}
	for _, c := range formula {
		if !cnf.ClauseSat(c, asn) {
			t.Errorf("clause %v not satisfied by witness %v", c, asn)
		}
	}
}

func TestCDCL_witness(t *testing.T) {
	formula := cnf.Formula{
		cnf.New(1, 2), cnf.New(-2, 3), cnf.New(-3, 4), cnf.New(-1, -4, 5),
	}
	asn, verdict := CDCL(formula)
	if verdict != Sat {
		t.Fatalf("verdict = %s, want %s", verdict, Sat)
	}
	if len(asn) != formula.NumVariables() {
		t.Fatalf("witness covers %d variables, want %d", len(asn), formula.NumVariables())
	}
	for _, c := range formula {
		if !cnf.ClauseSat(c, asn) {
			t.Errorf("clause %v not satisfied by witness %v", c, asn)
		}
	}
}

func TestEngines_emptyClauseInput(t *testing.T) {
	formula := cnf.Formula{cnf.New(1, 2), cnf.Clause{}}
	for _, name := range Names {
		engine, _ := ByName(name)
		if _, got := engine(formula); got != Unsat {
			t.Errorf("%s: verdict = %s, want %s for a formula containing the empty clause",
				name, got, Unsat)
		}
	}
}

func TestDavisPutnam_pureOnly(t *testing.T) {
	// Every literal is pure, so the formula empties without any resolution.
	f := cnf.Formula{cnf.New(1, 2), cnf.New(2, 3)}
	if got := DavisPutnam(f); got != Sat {
		t.Errorf("verdict = %s, want %s", got, Sat)
	}
}

func TestVerdict_String(t *testing.T) {
	if got := Sat.String(); got != "SATISFIABLE" {
		t.Errorf("Sat.String() = %q", got)
	}
	if got := Unsat.String(); got != "UNSATISFIABLE" {
		t.Errorf("Unsat.String() = %q", got)
	}
	if got := Unknown.String(); got != "UNKNOWN" {
		t.Errorf("Unknown.String() = %q", got)
	}
}
