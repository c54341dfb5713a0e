// Command satkit is a SAT solving toolkit. It decides CNF instances with one
// of four engines (resolution, Davis-Putnam, DPLL, CDCL), generates random
// 3-SAT benchmarks, and runs the solver matrix under a wall-clock budget.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GheorgheLuca1/satkit/internal/bench"
	"github.com/GheorgheLuca1/satkit/internal/cnf"
	"github.com/GheorgheLuca1/satkit/internal/dimacs"
	"github.com/GheorgheLuca1/satkit/internal/sat"
	"github.com/GheorgheLuca1/satkit/internal/solver"
)

const (
	exitSat   = 10
	exitUnsat = 20
)

func main() {
	log := logrus.New()

	root := &cobra.Command{
		Use:           "satkit",
		Short:         "A four-engine SAT solving toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		solveCmd(),
		menuCmd(),
		genCmd(log),
		benchCmd(log),
	)

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func load(filename string, gzipped, strict bool) (cnf.Formula, error) {
	if strict {
		return dimacs.LoadStrict(filename, gzipped)
	}
	return dimacs.Load(filename, gzipped)
}

func solveCmd() *cobra.Command {
	var (
		solverName string
		gzipped    bool
		strict     bool
		quiet      bool
		verbose    bool
		timeout    time.Duration
		cpuProfile string
	)

	cmd := &cobra.Command{
		Use:   "solve [flags] <instance>",
		Short: "Decide a single CNF instance",
		Long: `Solve reads a CNF instance and decides it with the selected engine.

The verdict is printed as a DIMACS solver line ("s SATISFIABLE" or
"s UNSATISFIABLE") followed, for satisfiable instances and engines that
produce a witness, by a "v ..." assignment line. The process exits with
code 10 for SAT and 20 for UNSAT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, ok := solver.ByName(solverName)
			if !ok {
				return fmt.Errorf("unknown solver %q (available: %s)",
					solverName, strings.Join(solver.Names, ", "))
			}

			formula, err := load(args[0], gzipped, strict)
			if err != nil {
				return err
			}

			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
			}

			if !quiet {
				fmt.Printf("c solver:     %s\n", solverName)
				fmt.Printf("c variables:  %d\n", formula.NumVariables())
				fmt.Printf("c clauses:    %d\n", len(formula))
			}

			t := time.Now()
			var asn cnf.Assignment
			var verdict solver.Verdict
			if solverName == "cdcl" {
				opts := sat.DefaultOptions
				opts.Verbose = verbose && !quiet
				if timeout > 0 {
					opts.Timeout = timeout
				}
				asn, verdict = solver.CDCLWithOptions(formula, opts)
			} else {
				asn, verdict = engine(formula)
			}
			elapsed := time.Since(t)

			if cpuProfile != "" {
				pprof.StopCPUProfile()
			}

			if !quiet {
				fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
			}
			fmt.Printf("s %s\n", verdict)
			if verdict == solver.Sat && asn != nil {
				fmt.Println(witnessLine(asn, formula.NumVariables()))
			}

			switch verdict {
			case solver.Sat:
				os.Exit(exitSat)
			case solver.Unsat:
				os.Exit(exitUnsat)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&solverName, "solver", "cdcl", "engine to use: "+strings.Join(solver.Names, ", "))
	cmd.Flags().BoolVar(&gzipped, "gzip", false, "instance file is gzip compressed")
	cmd.Flags().BoolVar(&strict, "strict", false, "require a standard DIMACS problem line")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "only print the verdict and witness lines")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print CDCL search statistics")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "in-process time budget for the CDCL engine (0 = none)")
	cmd.Flags().StringVar(&cpuProfile, "cpuprof", "", "save a pprof CPU profile to the given file")

	return cmd
}

// witnessLine formats the assignment as a DIMACS "v" line over variables
// 1..n. Variables the search left unconstrained default to true.
func witnessLine(asn cnf.Assignment, n int) string {
	sb := strings.Builder{}
	sb.WriteString("v")
	for v := 1; v <= n; v++ {
		if val, ok := asn[v]; ok && !val {
			sb.WriteString(" -")
			sb.WriteString(strconv.Itoa(v))
		} else {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(v))
		}
	}
	sb.WriteString(" 0")
	return sb.String()
}

func menuCmd() *cobra.Command {
	var (
		gzipped bool
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "menu [instance]",
		Short: "Interactively pick an engine and solve",
		Long: `Menu loads an instance file, or reads clauses from standard input when no
file is given (integers, end each line with 0, blank line to finish), then
prompts for one of the four engines and reports the verdict and solve time.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())

			var formula cnf.Formula
			var err error
			if len(args) == 1 {
				formula, err = load(args[0], gzipped, strict)
				if err != nil {
					return err
				}
			} else {
				formula, err = readManual(in)
				if err != nil {
					return err
				}
			}
			if len(formula) == 0 {
				fmt.Println("No clauses loaded.")
				return nil
			}

			fmt.Println()
			fmt.Println("Loaded clause set:")
			fmt.Printf("%# v\n", pretty.Formatter(formula))

			fmt.Println()
			fmt.Println("Select solver:")
			fmt.Println("1. Resolution")
			fmt.Println("2. Davis-Putnam")
			fmt.Println("3. DPLL (iterative)")
			fmt.Println("4. CDCL (watched + 1-UIP)")
			fmt.Printf("Your choice [1-%d]: ", len(solver.Names))

			if !in.Scan() {
				return in.Err()
			}
			choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
			if err != nil || choice < 1 || choice > len(solver.Names) {
				return fmt.Errorf("bad input %q", strings.TrimSpace(in.Text()))
			}

			name := solver.Names[choice-1]
			engine, _ := solver.ByName(name)

			t := time.Now()
			_, verdict := engine(formula)
			elapsed := time.Since(t)

			fmt.Println()
			fmt.Println(verdict)
			fmt.Printf("Time: %.4f s\n", elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().BoolVar(&gzipped, "gzip", false, "instance file is gzip compressed")
	cmd.Flags().BoolVar(&strict, "strict", false, "require a standard DIMACS problem line")

	return cmd
}

// readManual reads clauses from the scanner, one per line, until the first
// blank line.
func readManual(in *bufio.Scanner) (cnf.Formula, error) {
	fmt.Println("Enter CNF clauses (integers, end each line with 0). Blank line to finish.")
	formula := cnf.Formula{}
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			break
		}
		clause, err := cnf.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("bad clause %q: %s", line, err)
		}
		if len(clause) == 0 {
			return nil, fmt.Errorf("empty clause %q", line)
		}
		formula = append(formula, clause)
	}
	return formula, in.Err()
}

func genCmd(log *logrus.Logger) *cobra.Command {
	var (
		dir   string
		sizes []int
		alpha float64
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random 3-SAT benchmark instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bench.EnsureDir(dir, sizes, alpha, seed); err != nil {
				return err
			}
			files, err := bench.ListInstances(dir)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"dir":       dir,
				"instances": len(files),
			}).Info("benchmark instances ready")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "bench", "benchmark directory")
	cmd.Flags().IntSliceVar(&sizes, "sizes", bench.DefaultSizes, "variable counts, one instance per size")
	cmd.Flags().Float64Var(&alpha, "alpha", bench.DefaultAlpha, "clause/variable ratio")
	cmd.Flags().Int64Var(&seed, "seed", bench.DefaultSeed, "generator seed")

	return cmd
}

func benchCmd(log *logrus.Logger) *cobra.Command {
	var (
		dir      string
		out      string
		solvers  []string
		timeout  time.Duration
		parallel int
		verify   bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the solver matrix over the benchmark directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range solvers {
				if _, ok := solver.ByName(name); !ok {
					return fmt.Errorf("unknown solver %q", name)
				}
			}

			if err := bench.EnsureDir(dir, bench.DefaultSizes, bench.DefaultAlpha, bench.DefaultSeed); err != nil {
				return err
			}
			files, err := bench.ListInstances(dir)
			if err != nil {
				return err
			}
			outFile := filepath.Join(dir, out)
			instances := files[:0]
			for _, f := range files {
				if f != outFile {
					instances = append(instances, f)
				}
			}
			files = instances

			exe, err := os.Executable()
			if err != nil {
				return err
			}

			runner := &bench.Runner{
				Exe:      exe,
				Solvers:  solvers,
				Timeout:  timeout,
				Parallel: parallel,
				Verify:   verify,
				Log:      log,
			}
			results, err := runner.RunFiles(context.Background(), files)
			if err != nil {
				return err
			}

			if err := bench.WriteTableFile(outFile, solvers, results); err != nil {
				return err
			}
			if err := bench.WriteTable(os.Stdout, solvers, results); err != nil {
				return err
			}
			log.WithField("file", outFile).Info("summary written")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "bench", "benchmark directory")
	cmd.Flags().StringVar(&out, "out", "results.txt", "report file name (inside the benchmark directory)")
	cmd.Flags().StringSliceVar(&solvers, "solvers", solver.Names, "engines to run")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "wall-clock budget per (solver, instance)")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "number of cells to run concurrently")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check verdicts against the reference solver")

	return cmd
}
