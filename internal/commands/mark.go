package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&MarkStatusCmd{})
}

// MarkStatusCmd implements the mark_status command.
type MarkStatusCmd struct{}

func (c *MarkStatusCmd) Name() string      { return "mark_status" }
func (c *MarkStatusCmd) Aliases() []string { return []string{"mark"} }
func (c *MarkStatusCmd) Synopsis() string  { return "Mark a task as done or not done" }
func (c *MarkStatusCmd) Usage() string     { return "todo mark_status <index> <true|false>" }
func (c *MarkStatusCmd) NeedsStore() bool  { return true }

func (c *MarkStatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MarkStatusCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	index, ok := parseIndexArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	done, err := ParseStatus(argAt(args, 1))
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	return markStatus(cfg, svc, index, done, out, errOut)
}

// markStatus is shared by mark_status and done.
func markStatus(cfg *config.Config, svc service.Service, index int, done bool, out, errOut io.Writer) int {
	if err := svc.MarkStatus(index, done); err != nil {
		return handleStoreErr(err, out, errOut)
	}

	if code := save(svc, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		if done {
			fmt.Fprintln(out, "Task marked as done")
		} else {
			fmt.Fprintln(out, "Task marked as not done")
		}
	}
	return exitcode.Success
}
