package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"runcfg/internal/domain"
)

// Collector turns command-line paths into test items
type Collector struct {
	scanner *Scanner
	filter  *Filter
}

// NewCollector creates a Collector
func NewCollector(scanner *Scanner, filter *Filter) *Collector {
	return &Collector{scanner: scanner, filter: filter}
}

// Collect expands directories into the test files they contain, keeps files as
// they are and applies the name filter. Items keep the order of paths.
func (c *Collector) Collect(paths []string, nameFilter string) ([]domain.TestItem, error) {
	var items []domain.TestItem
	seen := make(map[string]bool)

	add := func(path string) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if seen[path] {
			return
		}
		seen[path] = true
		items = append(items, domain.TestItem{ID: path, Location: path})
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("test path does not exist: %s", path)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		files, err := c.scanner.Scan(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			add(file)
		}
	}

	return c.filter.FilterByName(items, nameFilter), nil
}
