// Package config reads the handful of environment knobs this compiler
// honors. There is no config file: a single-shot stdin/stdout compiler
// has nothing worth persisting beyond the process environment.
package config

import "github.com/xyproto/env/v2"

// Config is the resolved set of environment-driven knobs for one run.
type Config struct {
	// Trace, when set, makes the driver also write a one-line summary of
	// the labels and temporaries allocated to stderr once compilation
	// finishes. There is no per-statement trace. It never changes stdout.
	Trace bool

	// NoColor disables ANSI coloring in cerr.Format's caret diagnostics.
	// Honors the NO_COLOR convention in addition to its own variable.
	NoColor bool
}

// Load reads TACC_TRACE and TACC_NO_COLOR (plus the NO_COLOR convention)
// from the process environment.
func Load() Config {
	return Config{
		Trace:   env.Bool("TACC_TRACE"),
		NoColor: env.Bool("TACC_NO_COLOR") || env.Bool("NO_COLOR"),
	}
}
