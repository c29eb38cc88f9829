package solve

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guntisx/sat-solver/internal/dimacs"
	"github.com/guntisx/sat-solver/pkg/sat"
	"github.com/guntisx/sat-solver/pkg/sat/solver"
)

const (
	formatDimacs = "dimacs"
	formatTable  = "table"
)

func NewSolveCommand() *cobra.Command {
	var format string
	var trace bool

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Decides satisfiability of a CNF problem given in dimacs format",
		Long: `Decides satisfiability of a CNF problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)

For satisfiable problems one satisfying assignment is printed, either
as a dimacs-style line of signed literals terminated by 0, or as a
Variable | Value table.
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], format, trace)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatDimacs, "output format for satisfying assignments (dimacs|table)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log search conflicts to stderr")
	return cmd
}

func run(cmd *cobra.Command, path, format string, trace bool) error {
	if format != formatDimacs && format != formatTable {
		return fmt.Errorf("unknown format %q: valid formats are dimacs and table", format)
	}

	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	problem, err := dimacs.Parse(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}
	for _, warning := range problem.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}

	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(sat.LoggingTracer{Writer: cmd.ErrOrStderr()}))
	}

	solution, err := solver.Solve(cmd.Context(), problem.Formula, options...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if solution.Error() != nil {
		fmt.Fprintln(out, "UNSATISFIABLE")
		return nil
	}

	fmt.Fprintln(out, "SATISFIABLE")
	if format == formatTable {
		return dimacs.WriteTable(out, solution.Literals())
	}
	return dimacs.WriteAssignment(out, solution.Literals())
}
