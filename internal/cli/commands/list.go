package commands

import (
	"github.com/spf13/cobra"

	"runcfg/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	deps *Dependencies
}

// NewListCommand creates a new ListCommand
func NewListCommand(deps *Dependencies) *ListCommand {
	return &ListCommand{deps: deps}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	var folders []domain.WorkspaceFolder
	for _, item := range locationItems(lc.deps.targets(args)) {
		folder := lc.deps.Folders.Resolve(item.Location)
		if folder == nil {
			lc.deps.Formatter.Notice("%s is not in a workspace folder", item.Location)
			continue
		}
		folders = append(folders, *folder)
	}

	for i, folder := range folders {
		configs, err := lc.deps.Settings.ConfigList(cmd.Context(), folder)
		if err != nil {
			return err
		}
		legacy, err := lc.deps.Resolver.LegacyDocument(folder)
		if err != nil {
			return err
		}
		lc.deps.Formatter.PrintConfigList(folder, configs, legacy)
		if i < len(folders)-1 {
			lc.deps.Formatter.Blank()
		}
	}
	return nil
}
