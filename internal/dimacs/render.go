package dimacs

import (
	"fmt"
	"io"

	"github.com/guntisx/sat-solver/pkg/sat"
)

// WriteAssignment writes a satisfying assignment as a single line of
// signed literals in ascending variable order, terminated by 0.
func WriteAssignment(w io.Writer, lits []sat.Lit) error {
	for _, lit := range lits {
		if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "0")
	return err
}

// WriteTable writes a satisfying assignment as a human-readable
// table, one row per variable in ascending order.
func WriteTable(w io.Writer, lits []sat.Lit) error {
	if _, err := fmt.Fprintln(w, "Variable | Value"); err != nil {
		return err
	}
	for _, lit := range lits {
		value := "False"
		if lit.Positive() {
			value = "True"
		}
		if _, err := fmt.Fprintf(w, "%8d | %s\n", lit.Var(), value); err != nil {
			return err
		}
	}
	return nil
}
