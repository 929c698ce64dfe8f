//go:build debug

package alnseq

import "fmt"

// assertRange panics if [start, end] is not a valid inclusive range
// into a buffer of the given length. Only compiled into builds tagged
// "debug" — see debug_release.go for the no-op used otherwise. Per
// spec §7.3, library code never calls this on the hot path; it exists
// for callers who want to catch a contract violation (an invalid
// SubSequence range) during development instead of silently clamping.
func assertRange(start, end, length int) {
	if start < 0 || end < start || end >= length {
		panic(fmt.Sprintf("alnseq: invalid range [%d, %d] for length %d", start, end, length))
	}
}
