package sat

import "fmt"

// Options configures a Solver: the decider and restarter selection plus
// the heuristic growth constants. These are fixed by convention rather
// than meant to be tuned per run, but are still exposed on Options rather
// than hardcoded inside the algorithm.
type Options struct {
	Decider   DeciderKind
	Restarter RestarterKind

	// VSIDSBumpGrowth is the additive amount VSIDS's incr grows by after
	// each learned clause.
	VSIDSBumpGrowth float64

	// MiniSATDecay is the divisor applied to MINISAT's incr after each
	// learned clause; being below 1, it makes incr grow.
	MiniSATDecay float64

	Logger Logger
}

// DefaultOptions pins the conventional heuristic constants. Decider/
// Restarter still default to ORDERED/None since the CLI requires the
// caller to name both explicitly; library callers that want a tuned solver
// set these fields themselves.
var DefaultOptions = Options{
	Decider:         DeciderOrdered,
	Restarter:       RestartNone,
	VSIDSBumpGrowth: 0.75,
	MiniSATDecay:    0.85,
	Logger:          nopLogger{},
}

// ConfigError reports an unknown decider or restarter name, or an invalid
// numeric option. It is returned by ParseDeciderKind, ParseRestarterKind
// and NewSolver, before any search starts.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func newConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
