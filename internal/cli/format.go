package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/pyfmt/internal/config"
	"github.com/shinji-kodama/pyfmt/internal/model"
	"github.com/shinji-kodama/pyfmt/internal/pathcheck"
	"github.com/shinji-kodama/pyfmt/internal/toolchain"
)

// runFormat is the main logic of the root command.
// It validates the paths, resolves the tool commands, and then either
// prints the plan (--dry-run) or runs isort and black in order.
func runFormat(cmd *cobra.Command, opts *rootOptions, args []string) error {
	log := verboseLogger{w: cmd.ErrOrStderr(), enabled: opts.verbose}
	paths := model.PathList(args)

	// Step 1: Validate every path before anything runs.
	if err := pathcheck.Validate(cmd.ErrOrStderr(), paths); err != nil {
		return err
	}
	log.Printf("Validated %d path(s)", len(paths))

	// Step 2: Resolve executables (flag > config file > default).
	isortCmd, blackCmd := opts.isortCommand, opts.blackCommand
	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		log.Printf("Loaded config %s", opts.configPath)
		isortCmd, blackCmd = cfg.Apply(isortCmd, blackCmd)
	}

	// Step 3: Plan both invocations over the same path list.
	invs := toolchain.Plan(toolchain.Chain(isortCmd, blackCmd), paths)

	if opts.dryRun {
		return printPlan(cmd.OutOrStdout(), invs, opts.jsonOutput)
	}

	// Step 4: Run them in order, stopping at the first failure.
	runner := &loggingRunner{
		next: toolchain.NewExecRunner(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		log:  log,
	}
	return toolchain.RunAll(cmd.Context(), runner, invs)
}

// loggingRunner traces each invocation before delegating to next.
type loggingRunner struct {
	next toolchain.Runner
	log  verboseLogger
}

func (r *loggingRunner) Run(ctx context.Context, inv model.Invocation) error {
	r.log.Printf("Running %s", inv)
	if err := r.next.Run(ctx, inv); err != nil {
		r.log.Printf("%s failed", inv.Tool)
		return err
	}
	r.log.Printf("%s finished", inv.Tool)
	return nil
}

// printPlan writes the planned invocations, one command line per tool in
// text mode or a single JSON document with --json.
func printPlan(w io.Writer, invs []model.Invocation, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"invocations": invs,
		}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, inv := range invs {
		if _, err := fmt.Fprintln(w, inv.String()); err != nil {
			return err
		}
	}
	return nil
}
