//go:build release

package debug_test

import (
	"testing"

	"github.com/rami3l/govox/debug"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestAssertCompiledOut(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	assert.False(t, debug.DEBUG)
	assert.NotPanics(t, func() {
		debug.Assertf(false, "x > 0", "x must be positive")
		debug.Assert(false, "false")
		debug.Unreachable("never")
		debug.AssertEq(1, 2)
	})
	assert.Empty(t, hook.AllEntries())
}
