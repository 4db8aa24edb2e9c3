package resolver

import (
	"context"
	"fmt"

	"runcfg/internal/domain"
)

// selectDeprecatedConfig applies the default-name rules of the deprecated file format
func (r *Resolver) selectDeprecatedConfig(ctx context.Context, groups []domain.ExecutionConfigGroup, usingDefaultConfig bool) (*domain.ExecutionConfig, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	if usingDefaultConfig {
		// More than one group gives no single default to go by.
		if len(groups) > 1 || groups[0].Default == "" {
			return nil, nil
		}
		group := groups[0]

		var matches []domain.ExecutionConfig
		for _, item := range group.Items {
			if item.Name == group.Default {
				matches = append(matches, item)
			}
		}

		switch len(matches) {
		case 0:
			r.notifier.Warn(fmt.Sprintf("Failed to find the default configuration item, no config with name: %s", group.Default))
			return nil, nil
		case 1:
			return &matches[0], nil
		default:
			r.notifier.Warn(fmt.Sprintf("More than one configuration with name %s found, the first one will be used", group.Default))
			return &matches[0], nil
		}
	}

	if len(groups) > 1 {
		r.notifier.Warn("Selecting from multi-root configurations is not supported in the deprecated configuration file, please move them to the settings file")
	}

	var configs []domain.ExecutionConfig
	for _, group := range groups {
		configs = append(configs, group.Items...)
	}
	return r.selectQuickPick(ctx, configs)
}
