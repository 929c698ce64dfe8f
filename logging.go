package alnseq

import (
	"fmt"
	"os"
)

// Verbose gates Vprint/Vprintf/Vprintln. Library code never flips it;
// a caller's CLI front end sets it from a flag before calling into
// this package.
var Verbose = false

// Vprint writes to stderr iff Verbose is set.
func Vprint(v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprint(os.Stderr, v...)
}

// Vprintf writes to stderr iff Verbose is set.
func Vprintf(format string, v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}

// Vprintln writes to stderr iff Verbose is set.
func Vprintln(v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintln(os.Stderr, v...)
}
