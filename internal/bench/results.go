package bench

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// emaDecay is the weight the summary's moving average keeps on its previous
// value: the first completed run sets the average and each later run moves
// it 10% of the way towards its own time.
const emaDecay = 0.9

// WriteTable writes the per-run rows followed by a per-solver summary. The
// summary counts outcomes and reports an exponential moving average of the
// completed run times.
func WriteTable(w io.Writer, solvers []string, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "file\tvars\tclauses\tsolver\tres\ttime")
	fmt.Fprintln(tw, "----\t----\t-------\t------\t---\t----")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%.3fs\n",
			r.File, r.Vars, r.Clauses, r.Solver, r.Status, r.Elapsed.Seconds())
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "solver\tsat\tunsat\ttimeout\terror\tema")
	fmt.Fprintln(tw, "------\t---\t-----\t-------\t-----\t---")
	for _, name := range solvers {
		var sat, unsat, timeout, errs int
		ema := NewEMA(emaDecay)
		for _, r := range results {
			if r.Solver != name {
				continue
			}
			switch r.Status {
			case StatusSat:
				sat++
			case StatusUnsat:
				unsat++
			case StatusTimeout:
				timeout++
			default:
				errs++
			}
			if r.Status == StatusSat || r.Status == StatusUnsat {
				ema.Add(r.Elapsed.Seconds())
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.3fs\n",
			name, sat, unsat, timeout, errs, ema.Val())
	}

	return tw.Flush()
}

// WriteTableFile writes the report to the given file.
func WriteTableFile(filename string, solvers []string, results []Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteTable(f, solvers, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
