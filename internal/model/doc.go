// Package model defines the domain types and value objects for the
// pyfmt CLI.
//
// This package contains pure data structures with no external dependencies.
// The path list and the planned tool invocations are transient: they are
// built from command-line arguments and discarded when the process exits.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
