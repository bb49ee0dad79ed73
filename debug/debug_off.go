//go:build release

package debug

const DEBUG = false
