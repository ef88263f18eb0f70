package lisp

import (
	"io"
	"os"
)

// Runtime holds the state shared by every environment frame descending from
// a single root: the source reader and the output streams.  A Runtime is
// created for a root environment by NewEnv and inherited by child frames.
type Runtime struct {
	// Reader parses source streams for the load builtin.  There is no
	// default Reader -- the parser package cannot be imported here without
	// creating an import cycle.
	Reader Reader

	// Stdout receives output written by the display builtin.
	Stdout io.Writer

	// Stderr receives diagnostic messages.  Every runtime failure is
	// reported here and evaluation of the failing step yields nil.
	Stderr io.Writer
}

// StandardRuntime returns a Runtime connected to the standard streams.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv)

// WithReader returns a Config that makes environments use r to parse
// source streams.
func WithReader(r Reader) Config {
	return func(env *LEnv) {
		env.Runtime.Reader = r
	}
}

// WithStdout returns a Config that makes environments write display output
// to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *LEnv) {
		env.Runtime.Stdout = w
	}
}

// WithStderr returns a Config that makes environments write diagnostic
// output to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) {
		env.Runtime.Stderr = w
	}
}
