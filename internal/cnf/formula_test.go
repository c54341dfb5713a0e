package cnf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClauseSat(t *testing.T) {
	c := New(1, -2)

	testCases := []struct {
		desc string
		asn  Assignment
		want bool
	}{
		{"empty assignment counts as potentially true", Assignment{}, true},
		{"true literal", Assignment{1: true, 2: true}, true},
		{"negative literal true", Assignment{1: false, 2: false}, true},
		{"all false", Assignment{1: false, 2: true}, false},
		{"partially false, rest unassigned", Assignment{1: false}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := ClauseSat(c, tc.asn); got != tc.want {
				t.Errorf("ClauseSat() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClauseConflict(t *testing.T) {
	c := New(1, -2)

	if !ClauseConflict(c, Assignment{1: false, 2: true}) {
		t.Error("ClauseConflict(): want true when all literals are assigned false")
	}
	if ClauseConflict(c, Assignment{1: false}) {
		t.Error("ClauseConflict(): want false with unassigned literals")
	}
	if ClauseConflict(c, Assignment{1: true, 2: true}) {
		t.Error("ClauseConflict(): want false with a true literal")
	}
}

func TestFormula_UnitLiteral(t *testing.T) {
	f := Formula{New(1, 2), New(3), New(4)}
	lit, ok := f.UnitLiteral()
	if !ok || lit != 3 {
		t.Errorf("UnitLiteral() = %d, %v; want first unit 3", lit, ok)
	}

	if _, ok := (Formula{New(1, 2)}).UnitLiteral(); ok {
		t.Error("UnitLiteral(): want false without unit clauses")
	}
}

func TestFormula_PureLiteral(t *testing.T) {
	// 1 is impure, -2 is the first pure literal in clause order.
	f := Formula{New(1, -2), New(-1, -2), New(3, -3)}
	lit, ok := f.PureLiteral()
	if !ok || lit != -2 {
		t.Errorf("PureLiteral() = %d, %v; want -2", lit, ok)
	}

	if _, ok := (Formula{New(1, -2), New(-1, 2)}).PureLiteral(); ok {
		t.Error("PureLiteral(): want false when every literal has its negation")
	}
}

func TestFormula_Propagate(t *testing.T) {
	f := Formula{New(1, 2), New(-1, 3), New(2, 4)}

	got, ok := f.Propagate(1)
	if !ok {
		t.Fatal("Propagate(1): unexpected conflict")
	}
	want := Formula{New(3), New(2, 4)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Propagate(1): mismatch (-want, +got):\n%s", diff)
	}

	if _, ok := (Formula{New(-1)}).Propagate(1); ok {
		t.Error("Propagate(): want conflict when striking the last literal")
	}
}

func TestFormula_Propagate_doesNotMutate(t *testing.T) {
	f := Formula{New(1, 2), New(-1, 3)}
	orig := f.Copy()

	if _, ok := f.Propagate(1); !ok {
		t.Fatal("Propagate(1): unexpected conflict")
	}
	if diff := cmp.Diff(orig, f); diff != "" {
		t.Errorf("Propagate() mutated its receiver (-want, +got):\n%s", diff)
	}
}

func TestFormula_NumVariables(t *testing.T) {
	f := Formula{New(1, -7), New(3)}
	if got := f.NumVariables(); got != 7 {
		t.Errorf("NumVariables() = %d, want 7", got)
	}
	if got := (Formula{}).NumVariables(); got != 0 {
		t.Errorf("NumVariables() = %d, want 0 for the empty formula", got)
	}
}

func TestFormula_Contains(t *testing.T) {
	f := Formula{New(1, 2), New(-3)}
	if !f.Contains(New(2, 1)) {
		t.Error("Contains(): want true for literal-set equal clause")
	}
	if f.Contains(New(1, 2, 3)) {
		t.Error("Contains(): want false for absent clause")
	}
}
