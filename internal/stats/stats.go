// Package stats records solver-run statistics and renders them to a
// Results/stats_<basename>.txt file: counts of restarts, learned clauses,
// decisions and implications, plus a wall-clock breakdown across
// read/BCP/decide/analyze/backtrack, rendered with
// github.com/jedib0t/go-pretty/v6 rather than plain prints.
package stats

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/watchedliteral/cdcl/internal/sat"
)

// Recorder accumulates the wall-clock and counter statistics of one solve.
type Recorder struct {
	InputFile string
	Result    string

	NumVars          int
	NumOrigClauses   int
	NumStoredClauses int

	ReadTime      time.Duration
	BCPTime       time.Duration
	DecideTime    time.Duration
	AnalyzeTime   time.Duration
	BacktrackTime time.Duration
	TotalTime     time.Duration

	NumRestarts       int
	NumLearnedClauses int
	NumDecisions      int
	NumImplications   int
}

// FromSolver copies the counters and the BCP/decide/analyze/backtrack
// timings that s accumulated during Solve. ReadTime and TotalTime are not
// tracked by the solver; the caller sets them.
func (r *Recorder) FromSolver(s *sat.Solver) {
	r.NumVars = s.NumVariables()
	r.NumStoredClauses = s.NumClauses()
	r.NumRestarts = s.NumRestarts
	r.NumLearnedClauses = s.NumLearnedClauses
	r.NumDecisions = s.NumDecisions
	r.NumImplications = s.NumImplications
	r.BCPTime = s.BCPTime
	r.DecideTime = s.DecideTime
	r.AnalyzeTime = s.AnalyzeTime
	r.BacktrackTime = s.BacktrackTime
}

// Write renders the recorded statistics to path as a table of labeled
// rows.
func (r *Recorder) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create stats file %q: %w", path, err)
	}
	defer f.Close()

	t := table.NewWriter()
	t.SetOutputMirror(f)
	t.AppendHeader(table.Row{"statistic", "value"})
	t.AppendRow(table.Row{"input file", r.InputFile})
	t.AppendRow(table.Row{"variables", r.NumVars})
	t.AppendRow(table.Row{"original clauses", r.NumOrigClauses})
	t.AppendRow(table.Row{"stored clauses", r.NumStoredClauses})
	t.AppendSeparator()
	t.AppendRow(table.Row{"restarts", r.NumRestarts})
	t.AppendRow(table.Row{"learned clauses", r.NumLearnedClauses})
	t.AppendRow(table.Row{"decisions", r.NumDecisions})
	t.AppendRow(table.Row{"implications", r.NumImplications})
	t.AppendSeparator()
	t.AppendRow(table.Row{"read time", r.ReadTime})
	t.AppendRow(table.Row{"bcp time", r.BCPTime})
	t.AppendRow(table.Row{"decide time", r.DecideTime})
	t.AppendRow(table.Row{"analyze time", r.AnalyzeTime})
	t.AppendRow(table.Row{"backtrack time", r.BacktrackTime})
	t.AppendRow(table.Row{"total time", r.TotalTime})
	t.AppendSeparator()
	t.AppendRow(table.Row{"result", r.Result})
	t.Render()

	return nil
}
