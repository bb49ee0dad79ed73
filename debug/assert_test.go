//go:build !release

package debug_test

import (
	"runtime"
	"testing"

	"github.com/rami3l/govox/debug"
	e "github.com/rami3l/govox/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catch(f func()) (err *e.AssertionError) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(*e.AssertionError)
		}
	}()
	f()
	return
}

func TestAssertHolds(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		debug.Assert(true, "true")
		debug.Assertf(1 < 2, "1 < 2", "never shown")
		debug.AssertEq(3, 3)
	})
}

func TestAssertfReport(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	x := -1
	_, file, line, _ := runtime.Caller(0)
	err := catch(func() { debug.Assertf(x > 0, "x > 0", "x must be positive") })

	require.NotNil(t, err)
	assert.Equal(t, "x > 0", err.Expr)
	assert.Equal(t, file, err.File)
	assert.Equal(t, line+1, err.Line)
	assert.Equal(t, "x must be positive", err.Message)
	assert.Contains(t, err.Report, "x must be positive")
	assert.Contains(t, err.Report, "Assertion 'x > 0' failed in file '"+file+"'")
	assert.Contains(t, err.Report, "line")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, err.Report, entry.Message)
}

func TestAssertWithoutMessage(t *testing.T) {
	err := catch(func() { debug.Assert(len("abc") == 2, `len("abc") == 2`) })
	require.NotNil(t, err)
	assert.Empty(t, err.Message)
	assert.Regexp(t, `^Assertion 'len\("abc"\) == 2' failed in file '.*assert_test\.go' line \d+$`, err.Report)
}

func TestUnreachable(t *testing.T) {
	err := catch(func() { debug.Unreachable("opcode %d", 7) })
	require.NotNil(t, err)
	assert.Equal(t, "false", err.Expr)
	assert.Regexp(t, `^opcode 7: Unreachable code assertion failed in file`, err.Report)
}

func TestAssertEq(t *testing.T) {
	err := catch(func() { debug.AssertEq("foo", "bar") })
	require.NotNil(t, err)
	assert.Equal(t, "foo != bar", err.Message)
}
