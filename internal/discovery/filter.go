package discovery

import (
	"path/filepath"
	"strings"

	"runcfg/internal/domain"
)

// Filter filters test items by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the items whose file name matches pattern.
// Supports patterns like "*UserTest.java" or "*Payment*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(items []domain.TestItem, pattern string) []domain.TestItem {
	if pattern == "" {
		return items
	}

	var filtered []domain.TestItem
	for _, item := range items {
		if matchName(pattern, filepath.Base(item.Location)) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matchName(pattern, name string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*Payment*" style patterns: every literal part must appear, in order
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}
