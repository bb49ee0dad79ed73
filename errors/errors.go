package errors

import (
	"fmt"
	"strings"
)

type CompilationError struct {
	Line   int
	Reason string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error [L%d]: %s", e.Line, e.Reason)
}

type RuntimeError struct {
	Line   int
	Reason string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error [L%d]: %s", e.Line, e.Reason)
}

// AssertionError is raised by a failed debug assertion.
type AssertionError struct {
	Expr    string
	File    string
	Line    int
	Message string
	// Report is the rendered, human-readable description of the failure.
	Report string
}

func NewAssertionError(expr, file string, line int, message string) *AssertionError {
	var sb strings.Builder
	if message != "" {
		sb.WriteString(message)
		sb.WriteString(": ")
	}
	if expr == "false" || expr == "0" {
		sb.WriteString("Unreachable code assertion")
	} else {
		fmt.Fprintf(&sb, "Assertion '%s'", expr)
	}
	fmt.Fprintf(&sb, " failed in file '%s' line %d", file, line)

	return &AssertionError{
		Expr:    expr,
		File:    file,
		Line:    line,
		Message: message,
		Report:  sb.String(),
	}
}

func (e *AssertionError) Error() string { return e.Report }

const Unreachable = "internal error: entered unreachable code"
