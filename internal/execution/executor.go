package execution

import (
	"context"
	"time"

	"runcfg/internal/domain"
)

// Executor executes test items and returns results
type Executor interface {
	Execute(ctx context.Context, items []domain.TestItem) ([]domain.TestResult, time.Duration, error)
}

// Progress receives updates while items are executed
type Progress interface {
	Update(successCount, failCount int)
	Finish()
}
