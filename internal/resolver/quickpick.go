package resolver

import (
	"context"
	"fmt"

	"runcfg/internal/domain"
)

// selectQuickPick asks the user to choose one of configs. Dismissing the
// prompt is an error, as is having nothing to choose from.
func (r *Resolver) selectQuickPick(ctx context.Context, configs []domain.ExecutionConfig) (*domain.ExecutionConfig, error) {
	if len(configs) == 0 {
		return nil, ErrNoConfigSpecified
	}

	entries := PickEntries(configs)
	index, ok, err := r.prompt.Pick(ctx, entries, PickPlaceholder)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoConfigSpecified
	}
	if index < 0 || index >= len(configs) {
		return nil, fmt.Errorf("prompt returned choice %d of %d", index, len(configs))
	}
	return &configs[index], nil
}

// PickEntries builds the prompt entries for configs, in order
func PickEntries(configs []domain.ExecutionConfig) []PickEntry {
	entries := make([]PickEntry, len(configs))
	for i, c := range configs {
		entries[i] = PickEntry{
			Label:  c.Label(i),
			Detail: c.Detail(),
		}
	}
	return entries
}
