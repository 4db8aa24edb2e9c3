package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"runcfg/internal/domain"
	"runcfg/internal/execution"
	"runcfg/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	deps *Dependencies
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(deps *Dependencies) *RunCommand {
	return &RunCommand{deps: deps}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := rc.deps.Config.Flags

	// Discover tests
	items, err := rc.deps.Collector.Collect(rc.deps.targets(args), flags.NameFilter)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		rc.deps.Formatter.Notice("No tests to execute")
		return nil
	}

	folder := rc.deps.Folders.Resolve(items[0].Location)
	if folder == nil {
		rc.deps.Formatter.Notice("%s is not in a workspace folder, nothing to run", items[0].Location)
		return nil
	}

	// Select configuration
	cfg, err := rc.deps.Resolver.LoadRunConfig(ctx, items, flags.Debug, flags.UseDefault)
	if err != nil {
		return err
	}
	if cfg == nil {
		rc.deps.Formatter.Notice("No configuration selected, nothing to run")
		return nil
	}

	params, err := execution.ParseParams(cfg, *folder)
	if err != nil {
		return fmt.Errorf("configuration %s: %w", cfg.DisplayName(), err)
	}
	runner, err := execution.NewRunner(params, rc.deps.Logger)
	if err != nil {
		return err
	}

	// Execute tests
	pool := execution.NewWorkerPool(runner, execution.NewRoundRobinScheduler(), rc.deps.Config.Processors, flags.FailFast)
	pool.SetProgress(ui.NewProgressBar(len(items)))

	results, duration, err := pool.Execute(ctx, items)
	if err != nil {
		return err
	}

	summary := domain.RunSummary{
		Config:   cfg.DisplayName(),
		Total:    len(items),
		Duration: duration,
		Workers:  pool.Workers(),
	}
	for _, r := range results {
		if r.Success {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	rc.deps.Formatter.PrintSummary(summary, results, folder.Path)

	if summary.Failed > 0 {
		return fmt.Errorf("%d test item(s) failed", summary.Failed)
	}
	return nil
}
