package domain

import "time"

// TestResult represents the result of executing a single test item
type TestResult struct {
	Item     TestItem      // The test item that was executed
	Success  bool          // Whether the command exited cleanly
	Output   string        // Combined stdout/stderr of the command
	Error    error         // Error if execution failed
	Duration time.Duration // Time taken to execute
}

// RunSummary aggregates the results of one run
type RunSummary struct {
	Config   string        `json:"config"`
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
	Workers  int           `json:"workers"`
}
