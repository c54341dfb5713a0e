package bench

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/GheorgheLuca1/satkit/internal/dimacs"
	"github.com/GheorgheLuca1/satkit/internal/solver"
)

// Status is the harness-level outcome of a single solver run.
type Status string

const (
	StatusSat     Status = "SAT"
	StatusUnsat   Status = "UNSAT"
	StatusTimeout Status = "TIME"
	StatusError   Status = "ERROR"
)

// Result is one row of the benchmark report.
type Result struct {
	File    string
	Vars    int
	Clauses int
	Solver  string
	Status  Status
	Elapsed time.Duration
}

// Runner executes the (solver, instance) matrix. Each cell runs in its own
// subprocess so that the wall-clock budget can be enforced by hard
// termination: the solvers themselves have no cancellation points.
type Runner struct {
	// Exe is the binary to invoke for each cell, typically the running
	// binary itself (os.Executable).
	Exe string

	Solvers  []string
	Timeout  time.Duration
	Parallel int

	// Verify cross-checks every completed verdict against the reference
	// solver. Mismatches are logged and reported as ERROR.
	Verify bool

	Log logrus.FieldLogger
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}

// RunFiles runs every configured solver on every instance file. The returned
// rows are ordered by (file, solver) regardless of completion order, so
// reports are deterministic even with Parallel > 1.
func (r *Runner) RunFiles(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files)*len(r.Solvers))

	g, ctx := errgroup.WithContext(ctx)
	limit := r.Parallel
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for fi, file := range files {
		formula, err := dimacs.Load(file, false)
		if err != nil {
			return nil, fmt.Errorf("could not load instance %q: %s", file, err)
		}
		nVars := formula.NumVariables()
		nClauses := len(formula)

		want := solver.Unknown
		if r.Verify {
			want = Reference(formula)
		}

		r.logger().WithFields(logrus.Fields{
			"instance": filepath.Base(file),
			"vars":     nVars,
			"clauses":  nClauses,
		}).Info("running instance")

		for si, name := range r.Solvers {
			fi, si, file, name := fi, si, file, name
			g.Go(func() error {
				res := r.runOne(ctx, file, name)
				res.Vars = nVars
				res.Clauses = nClauses

				if r.Verify && res.Status.verdict() != solver.Unknown && res.Status.verdict() != want {
					r.logger().WithFields(logrus.Fields{
						"instance": res.File,
						"solver":   res.Solver,
						"got":      res.Status,
						"want":     want,
					}).Error("verdict disagrees with reference solver")
					res.Status = StatusError
				}

				r.logger().WithFields(logrus.Fields{
					"instance": res.File,
					"solver":   res.Solver,
					"status":   res.Status,
					"time":     res.Elapsed.Seconds(),
				}).Info("run finished")

				results[fi*len(r.Solvers)+si] = res
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne spawns one solve subprocess under the wall-clock budget. On expiry
// the subprocess is killed and the cell is reported as TIME.
func (r *Runner) runOne(ctx context.Context, file string, solverName string) Result {
	res := Result{
		File:   filepath.Base(file),
		Solver: solverName,
	}

	cctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, r.Exe, "solve", "--solver", solverName, "--quiet", file)
	start := time.Now()
	out, err := cmd.Output()
	res.Elapsed = time.Since(start)

	if cctx.Err() == context.DeadlineExceeded {
		res.Status = StatusTimeout
		res.Elapsed = r.Timeout
		return res
	}

	// The solve command exits with the conventional codes 10 (SAT) and 20
	// (UNSAT), so a non-nil err with a parsable verdict line is expected.
	status, ok := parseVerdict(out)
	if !ok && err != nil {
		r.logger().WithFields(logrus.Fields{
			"instance": res.File,
			"solver":   solverName,
		}).Warnf("subprocess failed: %s", err)
	}
	res.Status = status
	return res
}

// parseVerdict extracts the "s ..." verdict line from a solver's output.
func parseVerdict(out []byte) (Status, bool) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "s SATISFIABLE":
			return StatusSat, true
		case "s UNSATISFIABLE":
			return StatusUnsat, true
		}
	}
	return StatusError, false
}

// verdict maps a completed status back to a solver verdict, with Unknown for
// TIME and ERROR.
func (st Status) verdict() solver.Verdict {
	switch st {
	case StatusSat:
		return solver.Sat
	case StatusUnsat:
		return solver.Unsat
	default:
		return solver.Unknown
	}
}
