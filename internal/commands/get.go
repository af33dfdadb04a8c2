package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&GetCmd{})
}

// GetCmd implements the get command.
type GetCmd struct{}

func (c *GetCmd) Name() string      { return "get" }
func (c *GetCmd) Aliases() []string { return nil }
func (c *GetCmd) Synopsis() string  { return "Show a task by index" }
func (c *GetCmd) Usage() string     { return "todo get <index>" }
func (c *GetCmd) NeedsStore() bool  { return true }

func (c *GetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *GetCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	index, ok := parseIndexArg(args, errOut)
	if !ok {
		return exitcode.UserError
	}

	t, err := svc.Get(index)
	if err != nil {
		return handleStoreErr(err, out, errOut)
	}

	output.FormatTaskDetail(out, index, t)
	return exitcode.Success
}
