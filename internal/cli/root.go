// Package cli implements the cobra-based command line for pyfmt.
//
// pyfmt has a single root command: it takes one or more paths, checks that
// each is a file or directory, and runs isort and then black over them.
// This file defines the root command, its flags, and the translation of
// errors into process exit codes. The formatting flow itself lives in
// format.go.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/pyfmt/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootOptions holds the flag values of one root command instance.
type rootOptions struct {
	// jsonOutput formats --dry-run output and error messages as JSON.
	jsonOutput bool

	// verbose enables [verbose] trace lines on stderr.
	verbose bool

	// dryRun prints the planned invocations instead of running them.
	dryRun bool

	// configPath is the optional config file with tool-command overrides.
	configPath string

	// isortCommand and blackCommand override the tool executables.
	isortCommand string
	blackCommand string
}

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pyfmt <path> [<path> ...]",
		Short: "Sort imports and format Python sources",
		Long: `pyfmt checks that every given path is an existing file or directory and
then formats them by running isort followed by black.

isort runs with: -n -l 88 --wl 88 -m 3 --tc --fgw 0 --up --remove-redundant-aliases
black runs with: -q

If any path is invalid, nothing is run. If isort fails, black is not run.
The exit status of a failing tool becomes the exit status of pyfmt.

Examples:
  pyfmt src/ tests/
  pyfmt --dry-run setup.py
  pyfmt --black /opt/venv/bin/black app.py`,

		Args: requirePaths,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},

		// SilenceUsage prevents cobra from printing usage on every error.
		// Run prints a short hint for usage errors instead.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// Every positional argument is a path. Without this, cobra installs
		// its "completion" command when the first path is named completion.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output --dry-run results and errors in JSON format")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the commands that would run without running them")
	flags.StringVar(&opts.configPath, "config", "", "Config file (.yaml, .yml, .json, .jsonc) with tool command overrides")
	flags.StringVar(&opts.isortCommand, "isort", "", "isort executable (default \"isort\")")
	flags.StringVar(&opts.blackCommand, "black", "", "black executable (default \"black\")")

	// Unknown or malformed flags are usage errors, like a missing path.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsage, "invalid arguments", err)
	})

	return rootCmd
}

// requirePaths is the positional-argument validator: at least one path.
func requirePaths(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return model.NewCLIError(model.ExitUsage, "requires at least 1 path argument")
	}
	return nil
}

// Execute runs the root command and exits the process with the resulting
// exit code. This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	os.Exit(Run(rootCmd))
}

// Run executes rootCmd, reports any error on the command's error stream and
// returns the exit code. CLIError types carry their own exit codes; other
// errors map to exit code 1.
func Run(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return int(model.ExitSuccess)
	}

	jsonOutput, _ := rootCmd.Flags().GetBool("json")
	w := rootCmd.ErrOrStderr()

	var cliErr *model.CLIError
	if !errors.As(err, &cliErr) {
		printError(w, jsonOutput, err.Error(), nil)
		return int(model.ExitGeneralError)
	}

	// The invalid-path lines are the whole report for that failure.
	if cliErr.Reported {
		return int(cliErr.Code)
	}

	printError(w, jsonOutput, cliErr.Message, cliErr.Err)
	if cliErr.Code == model.ExitUsage && !jsonOutput {
		fmt.Fprintf(w, "Run '%s --help' for usage.\n", rootCmd.CommandPath())
	}
	return int(cliErr.Code)
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json flag.
func printError(w io.Writer, jsonOutput bool, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// verboseLogger prints trace lines only when verbose mode is enabled.
type verboseLogger struct {
	w       io.Writer
	enabled bool
}

// Printf writes a [verbose] line. Trace output is best effort; write
// errors are ignored.
func (l verboseLogger) Printf(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.w, "[verbose] "+format+"\n", args...)
	}
}
