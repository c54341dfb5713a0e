// Package dimacs reads and writes CNF formulas in DIMACS-like formats. The
// relaxed reader accepts the clause-per-line files produced by the benchmark
// generator (no header required); the strict reader handles standard DIMACS
// CNF files with a problem line.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	rdimacs "github.com/rhartert/dimacs"

	"github.com/GheorgheLuca1/satkit/internal/cnf"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// Read parses the relaxed format: one clause per line of whitespace-separated
// signed integers, with an optional terminating 0. Blank lines and comment
// lines ("c ...") are skipped, a problem line ("p cnf ...") is accepted and
// ignored, and a line containing a single "%" ends the input (some benchmark
// files attach a trailer after it). A line that parses to the empty clause is
// rejected: the core assumes well-formed clauses.
func Read(r io.Reader) (cnf.Formula, error) {
	formula := cnf.Formula{}
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' || line[0] == 'p' {
			continue
		}
		if line == "%" {
			break
		}
		clause, err := cnf.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", lineNo, err)
		}
		if len(clause) == 0 {
			return nil, fmt.Errorf("line %d: empty clause", lineNo)
		}
		formula = append(formula, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return formula, nil
}

// Load reads a relaxed-format file, transparently decompressing it if
// gzipped is set.
func Load(filename string, gzipped bool) (cnf.Formula, error) {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer rc.Close()

	return Read(rc)
}

// LoadStrict reads a standard DIMACS CNF file (problem line required).
func LoadStrict(filename string, gzipped bool) (cnf.Formula, error) {
	rc, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer rc.Close()

	b := &formulaBuilder{}
	if err := rdimacs.ReadBuilder(rc, b); err != nil {
		return nil, err
	}
	if b.formula == nil {
		return nil, fmt.Errorf("file %q: missing problem line", filename)
	}
	return b.formula, nil
}

// formulaBuilder accumulates clauses to implement rdimacs.Builder.
type formulaBuilder struct {
	formula cnf.Formula
}

func (b *formulaBuilder) Problem(_ string, nVars int, nClauses int) error {
	b.formula = make(cnf.Formula, 0, nClauses)
	return nil
}

func (b *formulaBuilder) Clause(tmpClause []int) error {
	if b.formula == nil {
		return fmt.Errorf("clause before the problem line")
	}
	b.formula = append(b.formula, cnf.New(tmpClause...))
	return nil
}

func (b *formulaBuilder) Comment(_ string) error { return nil } // ignore comments
