package internal

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Status is the outcome of running one unit of source
type Status int

const (
	// StatusOK means the source ran to completion
	StatusOK Status = iota
	// StatusCompileError means scanning, parsing or resolving failed and nothing ran
	StatusCompileError
	// StatusRuntimeError means execution stopped at a runtime error
	StatusRuntimeError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCompileError:
		return "compile error"
	case StatusRuntimeError:
		return "runtime error"
	}
	return "unknown"
}

// Runner executes units of source against one set of globals, so
// definitions from a previous Run stay visible to the next one.
type Runner struct {
	printer IPrinter
	log     logrus.FieldLogger
	exec    *exec
}

// NewRunner creates a runner printing through p. A nil logger falls back to
// the logrus standard logger.
func NewRunner(p IPrinter, logger logrus.FieldLogger) *Runner {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{
		printer: p,
		log:     logger,
		exec:    newExec(p, logger),
	}
}

// Run scans, parses, resolves and executes source. Execution is skipped if
// any compile error was reported.
func (r *Runner) Run(source string) Status {
	state := newInterpreterState(r.printer)

	stmts, locals := r.compile(state, source)
	if state.PrintErrors() {
		return StatusCompileError
	}

	r.exec.resolved(locals)

	start := time.Now()
	runErr := r.exec.interpret(stmts)
	r.log.WithFields(logrus.Fields{
		"phase":   "interpret",
		"elapsed": time.Since(start),
	}).Debug("done")

	if runErr != nil {
		state.printRuntimeError(runErr)
		return StatusRuntimeError
	}
	return StatusOK
}

func (r *Runner) compile(state *interpreterState, source string) ([]stmt, map[expr]int) {
	start := time.Now()
	tokens := scan(state, source)
	r.log.WithFields(logrus.Fields{
		"phase":   "scan",
		"tokens":  len(tokens),
		"elapsed": time.Since(start),
	}).Debug("done")

	start = time.Now()
	stmts := parse(state, tokens)
	r.log.WithFields(logrus.Fields{
		"phase":      "parse",
		"statements": len(stmts),
		"elapsed":    time.Since(start),
	}).Debug("done")
	if !state.Valid() {
		return nil, nil
	}

	start = time.Now()
	locals := resolve(state, stmts)
	r.log.WithFields(logrus.Fields{
		"phase":   "resolve",
		"locals":  len(locals),
		"elapsed": time.Since(start),
	}).Debug("done")

	return stmts, locals
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) Status {
	return NewRunner(p, nil).Run(source)
}
