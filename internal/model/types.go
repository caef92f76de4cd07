package model

import (
	"fmt"
	"strings"
)

// PathList is the ordered list of files and/or directories supplied on the
// command line. Order is preserved into every tool invocation and duplicates
// are passed through unmodified.
type PathList []string

// Clone returns a copy of the path list that shares no backing array with
// the receiver. Invocations are built from clones so that appending flags
// can never write into the caller's slice.
func (p PathList) Clone() PathList {
	if p == nil {
		return nil
	}
	out := make(PathList, len(p))
	copy(out, p)
	return out
}

// Invocation describes one planned run of an external formatting tool.
type Invocation struct {
	// Tool is the display name of the tool (e.g., "isort").
	Tool string `json:"tool"`

	// Command is the executable that will be started. It is resolved
	// against PATH when it contains no path separator.
	Command string `json:"command"`

	// Args is the complete argument vector passed after the executable:
	// the tool's fixed flags followed by the path list.
	Args []string `json:"args"`
}

// String renders the invocation as a single space-separated command line.
// Arguments containing whitespace or quotes are single-quoted so the output
// can be pasted into a POSIX shell.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, shellQuote(i.Command))
	for _, a := range i.Args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// shellQuote wraps s in single quotes when it is empty or contains
// characters a shell would interpret.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`*?[]{}()<>|&;#~!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// ExitCode defines standard CLI exit codes.
// These codes allow scripts and CI systems to programmatically determine
// the outcome of a command. Exit codes of failing tools that do not appear
// here are passed through unchanged.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidPath indicates one or more path arguments are neither
	// a regular file nor a directory. No tool was started.
	ExitInvalidPath ExitCode = 1

	// ExitUsage indicates the command line could not be parsed
	// (missing path arguments, unknown flags).
	ExitUsage ExitCode = 2

	// ExitConfigError indicates the file given with --config could not
	// be read or parsed.
	ExitConfigError ExitCode = 3

	// ExitToolFailed indicates a tool could not be started or was
	// terminated by a signal and therefore has no exit status of its own.
	ExitToolFailed ExitCode = 126

	// ExitToolNotFound indicates a tool executable could not be located.
	ExitToolNotFound ExitCode = 127
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// Reported is true when the user-visible output for this error has
	// already been written (e.g., the invalid-path lines). The top level
	// then only exits with Code and prints nothing further.
	Reported bool
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// NewReportedError creates a CLIError whose output has already been written.
func NewReportedError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message, Reported: true}
}
