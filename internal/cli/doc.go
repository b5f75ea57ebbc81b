// Package cli wires together the Cobra command tree for the threadfmt binary.
//
// It defines the root command and its subcommands (format, config, version),
// binds flags, resolves configuration, reads input text, runs the thread
// formatter, and returns deterministic exit codes.
package cli
