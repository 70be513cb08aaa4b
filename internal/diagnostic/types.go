package diagnostic

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Severity represents the severity level of a finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the finding.
	Severity Severity
	// Code is a unique identifier for this type of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// Layer names the layer this relates to (if any).
	Layer string
}

// String formats the finding, e.g. `error[missing_url] layer "base": ...`.
func (d Diagnostic) String() string {
	if d.Layer == "" {
		return fmt.Sprintf("%s[%s]: %s", d.Severity, d.Code, d.Message)
	}

	return fmt.Sprintf("%s[%s] layer %q: %s", d.Severity, d.Code, d.Layer, d.Message)
}

// Diagnostics collects findings from one validation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// AddError adds an error finding.
func (d *Diagnostics) AddError(code, message, layer string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Layer:    layer,
	})
}

// AddWarning adds a warning finding.
func (d *Diagnostics) AddWarning(code, message, layer string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Layer:    layer,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// HasErrors returns true if any error finding was collected.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if no error finding was collected.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Err flattens the error findings into a single error, or nil when the
// pass was clean. Warnings are not part of the result.
func (d *Diagnostics) Err() error {
	var err error
	for _, diag := range d.Errors {
		err = multierr.Append(err, errors.New(diag.String()))
	}

	return err
}
