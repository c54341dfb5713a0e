package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	results := []Result{
		{File: "test1.cnf", Vars: 10, Clauses: 43, Solver: "dpll", Status: StatusSat, Elapsed: 12 * time.Millisecond},
		{File: "test1.cnf", Vars: 10, Clauses: 43, Solver: "cdcl", Status: StatusSat, Elapsed: 3 * time.Millisecond},
		{File: "test2.cnf", Vars: 200, Clauses: 860, Solver: "dpll", Status: StatusTimeout, Elapsed: 10 * time.Second},
		{File: "test2.cnf", Vars: 200, Clauses: 860, Solver: "cdcl", Status: StatusUnsat, Elapsed: 1200 * time.Millisecond},
	}

	buf := bytes.Buffer{}
	require.NoError(t, WriteTable(&buf, []string{"dpll", "cdcl"}, results))
	out := buf.String()

	for _, want := range []string{
		"file", "solver", "res", "time",
		"test1.cnf", "test2.cnf",
		"SAT", "UNSAT", "TIME",
	} {
		require.Truef(t, strings.Contains(out, want), "table misses %q:\n%s", want, out)
	}

	// Summary: dpll completed one run, cdcl two.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 6, "expected rows and a summary:\n%s", out)
}
