package execution

import (
	"context"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"runcfg/internal/domain"
)

// Runner executes the configured command for a single test item
type Runner struct {
	params *Params
	env    []string
	logger *zap.Logger
}

// NewRunner creates a Runner for params, resolving the environment once
func NewRunner(params *Params, logger *zap.Logger) (*Runner, error) {
	env, err := params.Environ()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{params: params, env: env, logger: logger}, nil
}

// Run executes `command... args... <item>` in the configured directory
func (r *Runner) Run(ctx context.Context, item domain.TestItem, workerID int) domain.TestResult {
	argv := append([]string{}, r.params.Command[1:]...)
	argv = append(argv, r.params.Args...)
	argv = append(argv, item.Location)

	cmd := exec.CommandContext(ctx, r.params.Command[0], argv...)
	cmd.Env = r.env
	cmd.Dir = r.params.Cwd

	r.logger.Debug("running test item",
		zap.Int("worker", workerID),
		zap.String("item", item.ID),
		zap.Strings("argv", cmd.Args),
	)

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.TestResult{
		Item:     item,
		Success:  err == nil,
		Output:   string(output),
		Error:    err,
		Duration: time.Since(start),
	}
}
