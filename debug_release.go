//go:build !debug

package alnseq

// assertRange is a no-op in ordinary builds; enable the "debug" build
// tag to get the real range check from debug_assert.go.
func assertRange(start, end, length int) {}
