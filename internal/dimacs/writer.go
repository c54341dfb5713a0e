package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/GheorgheLuca1/satkit/internal/cnf"
)

// Write writes the formula one clause per line, each terminated by 0. With
// header set, a standard "p cnf" problem line is emitted first so that the
// output is valid strict DIMACS.
func Write(w io.Writer, f cnf.Formula, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVariables(), len(f))
	}
	for _, c := range f {
		fmt.Fprintln(bw, c.String())
	}
	return bw.Flush()
}

// WriteFile writes the formula to the given file.
func WriteFile(filename string, f cnf.Formula, header bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(file, f, header); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
