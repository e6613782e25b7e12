// Command cdcl runs a CDCL SAT solver over a DIMACS CNF instance, taking
// four positional arguments (log_flag, decider, restarter, input_path) and
// exiting 0 on completion regardless of SAT/UNSAT, nonzero only on argument
// or I/O errors. Uses go-arg's positional-argument support in place of a
// flag-based CLI, since the required positional arguments with strict enum
// validation have no native equivalent in the stdlib flag package.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/sirupsen/logrus"

	"github.com/watchedliteral/cdcl/internal/parsers"
	"github.com/watchedliteral/cdcl/internal/resultio"
	"github.com/watchedliteral/cdcl/internal/sat"
	"github.com/watchedliteral/cdcl/internal/stats"
)

// cliArgs holds the four required positional arguments: log_flag ∈
// {True, False}, decider ∈ {ORDERED, VSIDS, MINISAT}, restarter ∈
// {None, GEOMETRIC, LUBY}, input_path. log_flag and the two enums are kept
// as raw strings and validated by hand (rather than via go-arg's enum
// support) so the error message names the exact offending token.
type cliArgs struct {
	LogFlag   string `arg:"positional,required"`
	Decider   string `arg:"positional,required"`
	Restarter string `arg:"positional,required"`
	InputPath string `arg:"positional,required"`
}

func (cliArgs) Description() string {
	return "solve a DIMACS CNF instance with a CDCL SAT solver"
}

func parseConfig(raw cliArgs) (decider sat.DeciderKind, restarter sat.RestarterKind, logEnabled bool, err error) {
	switch raw.LogFlag {
	case "True":
		logEnabled = true
	case "False":
		logEnabled = false
	default:
		return 0, 0, false, fmt.Errorf("log_flag must be True or False, got %q", raw.LogFlag)
	}

	decider, err = sat.ParseDeciderKind(raw.Decider)
	if err != nil {
		return 0, 0, false, err
	}
	restarter, err = sat.ParseRestarterKind(raw.Restarter)
	if err != nil {
		return 0, 0, false, err
	}
	return decider, restarter, logEnabled, nil
}

// logrusLogger adapts *logrus.Logger to the sat.Logger interface, the only
// point where the engine touches a concrete logging library (see
// internal/sat/logger.go).
type logrusLogger struct{ *logrus.Logger }

func run(raw cliArgs) error {
	decider, restarter, logEnabled, err := parseConfig(raw)
	if err != nil {
		return err
	}

	log := logrus.New()
	if logEnabled {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	opts := sat.DefaultOptions
	opts.Decider = decider
	opts.Restarter = restarter
	opts.Logger = logrusLogger{log}

	log.Infof("reading instance from %s", raw.InputPath)
	readStart := time.Now()
	solver, ok, err := parsers.LoadDIMACS(raw.InputPath, strings.HasSuffix(raw.InputPath, ".gz"), opts)
	readTime := time.Since(readStart)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	rec := &stats.Recorder{
		InputFile: raw.InputPath,
		ReadTime:  readTime,
	}
	rec.NumVars = solver.NumVariables()
	rec.NumOrigClauses = solver.NumClausesDeclared()

	solveStart := time.Now()
	var result sat.LBool
	if ok {
		result = solver.Solve()
	} else {
		result = sat.False
	}
	rec.TotalTime = time.Since(solveStart) + readTime
	rec.FromSolver(solver)

	if result == sat.True {
		rec.Result = "SAT"
	} else {
		rec.Result = "UNSAT"
	}
	log.Infof("result: %s (%d decisions, %d conflicts, %d restarts)",
		rec.Result, solver.NumDecisions, solver.NumConflicts, solver.NumRestarts)

	if err := os.MkdirAll("Results", 0o755); err != nil {
		return fmt.Errorf("could not create Results directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(raw.InputPath), filepath.Ext(raw.InputPath))

	statsPath := filepath.Join("Results", fmt.Sprintf("stats_%s.txt", base))
	if err := rec.Write(statsPath); err != nil {
		return err
	}

	if result == sat.True {
		assgnPath := filepath.Join("Results", fmt.Sprintf("assgn_%s.txt", base))
		if err := resultio.WriteAssignment(assgnPath, solver.Assignment()); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	var raw cliArgs
	arg.MustParse(&raw)

	if err := run(raw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
