// Package render formats normalized CV entries into markdown fragments via
// per-kind substitution templates.
package render

import "fmt"

// TemplateError represents an error parsing a section template
type TemplateError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error for %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error for %s: %s", e.Kind, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
