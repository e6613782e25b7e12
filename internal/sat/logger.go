package sat

// Logger is the minimal structured-logging surface the solver core needs.
// internal/sat never imports a logging library directly; main.go wires a
// github.com/sirupsen/logrus-backed implementation, keeping the engine
// decoupled from any one logging library.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

// nopLogger discards everything. Used when the caller does not wire a
// Logger: it is DefaultOptions' Logger, and NewSolver falls back to it when
// Options.Logger is nil.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
