// Package diagnostics is the sink consumed by the parser and analyzer (§6,
// §7): user-facing errors are reported here and never abort analysis.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/orcinuscc/orcinus/internal/location"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Hint Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "hint"
	}
}

// Code is a stable identifier for a diagnostic, so tooling can filter or
// dedupe without pattern-matching the message text.
type Code string

const (
	ErrParserExpected    Code = "P001" // consume() mismatch
	ErrDuplicateSymbol   Code = "S001" // redefinition with a non-function at the same scope level
	ErrUnresolvedName    Code = "S002" // scope.resolve found nothing
	ErrTypeMismatch      Code = "S003" // assignment/return/condition type mismatch
	ErrOverloadFailed    Code = "S004" // no candidate matched during overload resolution
	ErrUnificationFailed Code = "S005" // generic candidate inference failed
	ErrImportUnresolved  Code = "S006" // "from M import X" could not resolve X
	ErrMissingType       Code = "S007" // AutoType reached resolve_type outside the implicit-self/return-type cases §4.3 allows
	ErrNotImplemented    Code = "S999" // placeholder for a lowering branch not yet reached in this build
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Location location.Location
	Code     Code
	Message  string
}

func (d *Diagnostic) String() string {
	return fmt.Sprintf("%s: %s [%s] %s", d.Location, d.Severity, d.Code, d.Message)
}

// Manager collects diagnostics for one analysis run. It never panics for
// user errors (§7). Lowering branches for unhandled node kinds also report
// here, as ErrNotImplemented errors; they do not panic, and analysis of the
// module continues past them.
type Manager struct {
	RunID       uuid.UUID
	diagnostics []*Diagnostic
}

// NewManager creates a Manager stamped with a fresh correlation id, so a
// single CLI invocation's diagnostics can be traced across pipeline stages.
func NewManager() *Manager {
	return &Manager{RunID: uuid.New()}
}

func (m *Manager) report(sev Severity, loc location.Location, code Code, format string, args ...interface{}) *Diagnostic {
	d := &Diagnostic{Severity: sev, Location: loc, Code: code, Message: fmt.Sprintf(format, args...)}
	m.diagnostics = append(m.diagnostics, d)
	return d
}

// Error reports an error-severity diagnostic.
func (m *Manager) Error(loc location.Location, code Code, format string, args ...interface{}) *Diagnostic {
	return m.report(Error, loc, code, format, args...)
}

// Warning reports a warning-severity diagnostic.
func (m *Manager) Warning(loc location.Location, code Code, format string, args ...interface{}) *Diagnostic {
	return m.report(Warning, loc, code, format, args...)
}

// Hint reports a hint-severity diagnostic.
func (m *Manager) Hint(loc location.Location, code Code, format string, args ...interface{}) *Diagnostic {
	return m.report(Hint, loc, code, format, args...)
}

// All returns every diagnostic recorded so far, in report order.
func (m *Manager) All() []*Diagnostic {
	return m.diagnostics
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (m *Manager) HasErrors() bool {
	for _, d := range m.diagnostics {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
