// Package toolchain defines the external formatting tools pyfmt dispatches
// to and runs them as child processes.
//
// Two tools are known: the import sorter (isort) and the code formatter
// (black). Each has a fixed, non-configurable flag set; only the executable
// may be overridden. The path list is appended after the flags unchanged.
//
// Design decisions:
//   - Tools are run with os/exec and inherit the caller's stdio. Their
//     output is never parsed; only the exit status is observed.
//   - Runs are strictly sequential and block without a timeout. RunAll stops
//     at the first failure so a later tool never sees files an earlier tool
//     failed on.
//   - Every failure is returned as a model.CLIError whose Code is the exit
//     status the pyfmt process should end with.
package toolchain
