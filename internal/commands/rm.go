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
	Register(&RemoveCmd{})
}

// RemoveCmd implements the remove command.
type RemoveCmd struct{}

func (c *RemoveCmd) Name() string      { return "remove" }
func (c *RemoveCmd) Aliases() []string { return []string{"rm"} }
func (c *RemoveCmd) Synopsis() string  { return "Remove a task by index" }
func (c *RemoveCmd) Usage() string     { return "todo remove <index>" }
func (c *RemoveCmd) NeedsStore() bool  { return true }

func (c *RemoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RemoveCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	index, ok := parseIndexArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	if err := svc.Remove(index); err != nil {
		return handleStoreErr(err, out, errOut)
	}

	if code := save(svc, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Task removed!")
	}
	return exitcode.Success
}
