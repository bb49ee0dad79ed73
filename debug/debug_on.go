//go:build !release

package debug

// DEBUG enables assertions and extra tracing. Build with `-tags release` to turn it off.
const DEBUG = true
