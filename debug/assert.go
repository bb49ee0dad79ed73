package debug

import (
	"fmt"
	"runtime"

	e "github.com/rami3l/govox/errors"
	"github.com/sirupsen/logrus"
)

// Assert panics with an *errors.AssertionError if cond is false.
// expr is the source text of the checked condition.
// It is a no-op unless DEBUG is set.
func Assert(cond bool, expr string) {
	if DEBUG && !cond {
		fail(expr, "")
	}
}

// Assertf is Assert with a formatted message prepended to the report.
func Assertf(cond bool, expr, format string, a ...any) {
	if DEBUG && !cond {
		fail(expr, fmt.Sprintf(format, a...))
	}
}

// Unreachable marks code that must never run.
func Unreachable(format string, a ...any) {
	if DEBUG {
		fail("false", fmt.Sprintf(format, a...))
	}
}

func AssertEq[T comparable](expected, got T) {
	if DEBUG && expected != got {
		fail("expected == got", fmt.Sprintf("%v != %v", expected, got))
	}
}

// fail must be called directly by one of the exported helpers so that the
// reported location is the assertion site.
func fail(expr, msg string) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "???", 0
	}
	err := e.NewAssertionError(expr, file, line, msg)
	logrus.Error(err.Report)
	panic(err)
}
