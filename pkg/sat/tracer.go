package sat

import (
	"fmt"
	"io"
	"sort"
)

// SearchPosition describes the state of the search at the moment a
// conflict was found.
type SearchPosition interface {
	Assignment() Assignment
	Conflicts() []Clause
}

// Tracer is notified of every conflict the search runs into.
type Tracer interface {
	Trace(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	assignment := p.Assignment()
	vars := make([]Var, 0, len(assignment))
	for v := range assignment {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	fmt.Fprintf(t.Writer, "---\nAssignment:\n")
	for _, v := range vars {
		fmt.Fprintf(t.Writer, "- %d = %t\n", v, assignment[v])
	}
	fmt.Fprintf(t.Writer, "Conflicts:\n")
	for _, clause := range p.Conflicts() {
		fmt.Fprintf(t.Writer, "- %v\n", clause)
	}
}
