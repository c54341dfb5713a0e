package cnf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_normalizes(t *testing.T) {
	testCases := []struct {
		desc string
		lits []int
		want Clause
	}{
		{"empty", nil, Clause{}},
		{"sorted", []int{3, 1, -2}, Clause{-2, 1, 3}},
		{"duplicates", []int{1, 1, -2, -2, 1}, Clause{-2, 1}},
		{"tautology kept", []int{1, -1}, Clause{-1, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := New(tc.lits...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("New(): mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestClause_Tautology(t *testing.T) {
	if !New(1, -1, 2).Tautology() {
		t.Error("Tautology(): want true for clause with complementary pair")
	}
	if New(1, 2, -3).Tautology() {
		t.Error("Tautology(): want false for clause without complementary pair")
	}
	if (Clause{}).Tautology() {
		t.Error("Tautology(): want false for the empty clause")
	}
}

func TestClause_Has(t *testing.T) {
	c := New(-3, 1, 2)
	for _, lit := range []int{-3, 1, 2} {
		if !c.Has(lit) {
			t.Errorf("Has(%d): want true", lit)
		}
	}
	for _, lit := range []int{3, -1, 4} {
		if c.Has(lit) {
			t.Errorf("Has(%d): want false", lit)
		}
	}
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		desc   string
		c1, c2 Clause
		want   Clause
		wantOK bool
	}{
		{
			desc:   "single pair",
			c1:     New(1, 2),
			c2:     New(-1, 3),
			want:   New(2, 3),
			wantOK: true,
		},
		{
			desc:   "no pair",
			c1:     New(1, 2),
			c2:     New(1, 3),
			wantOK: false,
		},
		{
			desc:   "unit clauses give empty resolvent",
			c1:     New(1),
			c2:     New(-1),
			want:   Clause{},
			wantOK: true,
		},
		{
			desc: "two pairs give tautological resolvent",
			c1:   New(1, 2),
			c2:   New(-1, -2),
			// The first complementary pair in c1's order is on variable 1.
			want:   New(2, -2),
			wantOK: true,
		},
		{
			desc:   "shared literals deduped",
			c1:     New(1, 2, 3),
			c2:     New(-1, 2, 4),
			want:   New(2, 3, 4),
			wantOK: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, ok := Resolve(tc.c1, tc.c2)
			if ok != tc.wantOK {
				t.Fatalf("Resolve(): ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Resolve(): mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestParse_roundTrip(t *testing.T) {
	clauses := []Clause{
		New(1),
		New(-1, 2),
		New(-3, -2, 1),
		New(5, -7, 11),
	}
	for _, c := range clauses {
		got, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %s", c.String(), err)
		}
		if !got.Equal(c) {
			t.Errorf("Parse(%q) = %v, want %v", c.String(), got, c)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("3 -1  2 0")
	if err != nil {
		t.Fatalf("Parse(): unexpected error: %s", err)
	}
	if want := New(-1, 2, 3); !got.Equal(want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}

	if _, err := Parse("1 x 2"); err == nil {
		t.Error("Parse(): want error on non-integer token")
	}

	got, err = Parse("0")
	if err != nil {
		t.Fatalf("Parse(): unexpected error: %s", err)
	}
	if len(got) != 0 {
		t.Errorf("Parse(\"0\") = %v, want empty clause", got)
	}
}
