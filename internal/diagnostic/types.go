package diagnostic

import (
	"fmt"
	"strings"

	"field-inspector/internal/common"
)

// Diagnostic codes.
const (
	CodeReflectionFault = "reflection-fault"
	CodeNoFields        = "no-fields"
	CodeNoEditable      = "no-editable-fields"
)

// Logger is the subset of *log.Logger used to report diagnostics.
type Logger interface {
	Printf(format string, v ...any)
}

// Diagnostics holds all diagnostic information from one inspection.
type Diagnostics struct {
	Errors []Diagnostic
	Infos  []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies which participant this relates to (if any).
	TypeName string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, fieldPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		FieldPath: fieldPath,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, fieldPath string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		TypeName:  typeName,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Infos...)

	return all
}

// Log writes every diagnostic to logger, one line each.
func (d *Diagnostics) Log(logger Logger) {
	for _, diag := range d.All() {
		logger.Printf("%s: %s", diag.Severity, diag)
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypeName != "" {
		prefix = append(prefix, "["+d.TypeName+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
