package commands

import (
	"github.com/spf13/cobra"
)

// ResolveCommand handles the resolve command
type ResolveCommand struct {
	deps *Dependencies
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(deps *Dependencies) *ResolveCommand {
	return &ResolveCommand{deps: deps}
}

// Execute runs the command
func (rc *ResolveCommand) Execute(cmd *cobra.Command, args []string) error {
	items := locationItems(rc.deps.targets(args))
	flags := rc.deps.Config.Flags

	cfg, err := rc.deps.Resolver.LoadRunConfig(cmd.Context(), items, flags.Debug, flags.UseDefault)
	if err != nil {
		return err
	}
	return rc.deps.Formatter.PrintConfig(cfg)
}
