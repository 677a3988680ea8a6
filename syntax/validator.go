// Package syntax checks parsed trees against the structural invariants the
// parser guarantees. It is used to vet trees built or rewritten outside the
// parser, and by the command line tool's --validate flag.
package syntax

import (
	"fmt"
	"strings"

	"github.com/strata-lang/strata/ast"
	"github.com/strata-lang/strata/token"
)

// ValidationError represents a violated tree invariant.
type ValidationError struct {
	Message  string         // description of the violation
	Node     ast.Node       // the offending node
	Location token.Location // source location, if known
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Location.IsValid() {
		return fmt.Sprintf("%s at %s", e.Message, e.Location)
	}
	return fmt.Sprintf("%s at offset %d", e.Message, e.Location.Offset)
}

// ValidationErrors wraps multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// NewValidationErrors creates a ValidationErrors from a slice of errors.
func NewValidationErrors(errs []ValidationError) *ValidationErrors {
	return &ValidationErrors{Errors: errs}
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
		for _, err := range e.Errors {
			fmt.Fprintf(&b, "  - %s\n", err.Error())
		}
		return b.String()
	}
}

// Unwrap returns the first error for errors.Is/As compatibility.
func (e *ValidationErrors) Unwrap() error {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}
	return nil
}

// Validator inspects a tree and returns validation errors.
// Validators must not modify the tree.
type Validator interface {
	Validate(root ast.Node) []ValidationError
}

// ValidatorFunc is an adapter to use a function as a Validator.
type ValidatorFunc func(ast.Node) []ValidationError

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(root ast.Node) []ValidationError {
	return f(root)
}

// Validate runs each validator over root and combines their errors. It
// returns nil if there are none.
func Validate(root ast.Node, validators ...Validator) error {
	var errs []ValidationError
	for _, v := range validators {
		errs = append(errs, v.Validate(root)...)
	}
	if len(errs) == 0 {
		return nil
	}
	return NewValidationErrors(errs)
}
