package root

import (
	"github.com/spf13/cobra"

	"github.com/guntisx/sat-solver/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sat-solver",
		Short: "sat-solver is a DPLL-based boolean satisfiability solver",
		Long: `A boolean satisfiability solver written in Go, built on the classic
DPLL procedure: unit propagation, pure-literal elimination and
backtracking search over partial assignments.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())

	return rootCmd
}
