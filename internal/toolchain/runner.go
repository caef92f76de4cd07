package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"

	"github.com/shinji-kodama/pyfmt/internal/model"
)

// Runner runs a single planned invocation to completion.
type Runner interface {
	Run(ctx context.Context, inv model.Invocation) error
}

// ExecRunner runs invocations as child processes.
//
// Nil streams are connected to the null device, following os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the given streams.
func NewExecRunner(stdin io.Reader, stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Run starts inv.Command with inv.Args and waits for it to exit.
// There is no timeout; ctx cancellation kills the process.
func (r *ExecRunner) Run(ctx context.Context, inv model.Invocation) error {
	// #nosec G204: the command is a formatter chosen by the user and the
	// arguments are fixed flags plus already-validated paths.
	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return classifyError(inv, err)
	}
	return nil
}

// classifyError converts an os/exec error into a CLIError carrying the exit
// status pyfmt should terminate with.
func classifyError(inv model.Invocation, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was killed by a signal.
		if code := exitErr.ExitCode(); code > 0 {
			return model.WrapCLIError(model.ExitCode(code),
				fmt.Sprintf("%s failed", inv.Tool), err)
		}
		return model.WrapCLIError(model.ExitToolFailed,
			fmt.Sprintf("%s terminated abnormally", inv.Tool), err)
	}

	// exec.ErrNotFound comes from the PATH lookup of a bare name;
	// fs.ErrNotExist from starting an explicit path that is missing.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return model.WrapCLIError(model.ExitToolNotFound,
			fmt.Sprintf("%s executable %q not found", inv.Tool, inv.Command), err)
	}

	return model.WrapCLIError(model.ExitToolFailed,
		fmt.Sprintf("failed to start %s", inv.Tool), err)
}

// RunAll runs invs in order and stops at the first failure.
func RunAll(ctx context.Context, r Runner, invs []model.Invocation) error {
	for _, inv := range invs {
		if err := r.Run(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}
