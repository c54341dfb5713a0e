// Package bench generates random 3-SAT instances and runs the solver matrix
// under a per-run wall-clock budget, producing a tabulated report.
package bench

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/GheorgheLuca1/satkit/internal/cnf"
	"github.com/GheorgheLuca1/satkit/internal/dimacs"
)

// Defaults of the benchmark generator. The clause/variable ratio 4.3 sits
// near the random 3-SAT phase transition, where instances are hardest.
var DefaultSizes = []int{100, 200, 300, 400, 600}

const (
	DefaultAlpha = 4.3
	DefaultSeed  = 42
)

// Generate3SAT returns a random 3-SAT formula with n variables and
// floor(alpha*n) clauses. Each clause picks three distinct variables and
// negates each with probability 1/2. The result is deterministic for a given
// rng state.
func Generate3SAT(rng *rand.Rand, n int, alpha float64) cnf.Formula {
	m := int(alpha * float64(n))
	f := make(cnf.Formula, 0, m)
	lits := make([]int, 3)
	for len(f) < m {
		vars := rng.Perm(n)[:3]
		for i, v := range vars {
			if rng.Intn(2) == 0 {
				lits[i] = -(v + 1)
			} else {
				lits[i] = v + 1
			}
		}
		f = append(f, cnf.New(lits...))
	}
	return f
}

// EnsureDir creates the benchmark directory and one instance file per size,
// skipping files that already exist. Existing files are never regenerated so
// that results stay comparable across runs.
func EnsureDir(dir string, sizes []int, alpha float64, seed int64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))
	for i, n := range sizes {
		name := filepath.Join(dir, fmt.Sprintf("test%d.cnf", i+1))
		if _, err := os.Stat(name); err == nil {
			continue
		}
		f := Generate3SAT(rng, n, alpha)
		if err := dimacs.WriteFile(name, f, false); err != nil {
			return fmt.Errorf("could not write %s: %s", name, err)
		}
	}
	return nil
}

// ListInstances returns the instance files of the benchmark directory in
// lexicographic order.
func ListInstances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".cnf", ".csv", ".txt":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
