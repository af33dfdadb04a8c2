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
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task by index" }
func (c *EditCmd) Usage() string     { return "todo edit <index> <new text...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	index, ok := parseIndexArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: new task text required")
		return exitcode.UserError
	}
	text := joinText(args[1:])

	if err := svc.Edit(index, text); err != nil {
		return handleStoreErr(err, out, errOut)
	}

	if code := save(svc, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task %d name updated to '%s'\n", index, text)
	}
	return exitcode.Success
}
