package execution

import "runcfg/internal/domain"

// Scheduler distributes test items across workers
type Scheduler interface {
	Schedule(items []domain.TestItem, workerCount int) [][]domain.TestItem
}

// RoundRobinScheduler distributes test items evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes test items evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(items []domain.TestItem, workerCount int) [][]domain.TestItem {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]domain.TestItem, workerCount)
	for i, item := range items {
		distribution[i%workerCount] = append(distribution[i%workerCount], item)
	}
	return distribution
}
