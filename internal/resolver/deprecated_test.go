package resolver

import (
	"context"
	"strings"
	"testing"

	"runcfg/internal/domain"
)

func group(t *testing.T, def string, configs ...string) domain.ExecutionConfigGroup {
	t.Helper()
	g := domain.ExecutionConfigGroup{Default: def}
	for _, c := range configs {
		g.Items = append(g.Items, mustConfig(t, c))
	}
	return g
}

func TestSelectDeprecatedConfig_Default(t *testing.T) {
	tests := []struct {
		name     string
		groups   []domain.ExecutionConfigGroup
		expected string // raw JSON of the expected config, empty for none
		warning  string
	}{
		{
			name:     "no groups",
			groups:   nil,
			expected: "",
		},
		{
			name:     "single match",
			groups:   []domain.ExecutionConfigGroup{group(t, "Y", `{"name":"X"}`, `{"name":"Y"}`)},
			expected: `{"name":"Y"}`,
		},
		{
			name:     "duplicate default names",
			groups:   []domain.ExecutionConfigGroup{group(t, "X", `{"name":"X","n":1}`, `{"name":"X","n":2}`, `{"name":"Y"}`)},
			expected: `{"name":"X","n":1}`,
			warning:  "More than one configuration with name X",
		},
		{
			name:     "default not found",
			groups:   []domain.ExecutionConfigGroup{group(t, "Z", `{"name":"X"}`)},
			expected: "",
			warning:  "no config with name: Z",
		},
		{
			name:     "empty default name",
			groups:   []domain.ExecutionConfigGroup{group(t, "", `{"name":"X"}`)},
			expected: "",
		},
		{
			name: "multiple groups",
			groups: []domain.ExecutionConfigGroup{
				group(t, "X", `{"name":"X"}`),
				group(t, "X", `{"name":"X"}`),
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			cfg, err := f.resolver.selectDeprecatedConfig(context.Background(), tt.groups, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expected == "" {
				if cfg != nil {
					t.Errorf("expected no selection, got %s", cfg.Raw)
				}
			} else if cfg == nil || string(cfg.Raw) != tt.expected {
				t.Errorf("expected %s, got %v", tt.expected, cfg)
			}

			if tt.warning == "" {
				if len(f.notifier.warnings) != 0 {
					t.Errorf("unexpected warnings %v", f.notifier.warnings)
				}
			} else {
				if len(f.notifier.warnings) != 1 {
					t.Fatalf("expected exactly one warning, got %v", f.notifier.warnings)
				}
				if !strings.Contains(f.notifier.warnings[0], tt.warning) {
					t.Errorf("expected warning containing %q, got %q", tt.warning, f.notifier.warnings[0])
				}
			}
			if f.prompt.calls != 0 {
				t.Errorf("prompt should not be shown in default mode")
			}
		})
	}
}

func TestSelectDeprecatedConfig_Interactive(t *testing.T) {
	t.Run("flattens groups in order", func(t *testing.T) {
		f := newFixture()
		f.prompt.choice = 2
		groups := []domain.ExecutionConfigGroup{
			group(t, "A", `{"name":"A"}`, `{"name":"B"}`),
			group(t, "", `{"name":"C"}`),
		}

		cfg, err := f.resolver.selectDeprecatedConfig(context.Background(), groups, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg == nil || cfg.Name != "C" {
			t.Errorf("expected C, got %v", cfg)
		}

		var labels []string
		for _, e := range f.prompt.entries {
			labels = append(labels, e.Label)
		}
		if strings.Join(labels, ",") != "A,B,C" {
			t.Errorf("expected entries A,B,C, got %v", labels)
		}
		if len(f.notifier.warnings) != 1 || !strings.Contains(f.notifier.warnings[0], "multi-root") {
			t.Errorf("expected one multi-root warning, got %v", f.notifier.warnings)
		}
	})

	t.Run("fallback labels use flattened position", func(t *testing.T) {
		f := newFixture()
		groups := []domain.ExecutionConfigGroup{
			group(t, "", `{"name":"A"}`),
			group(t, "", `{"args":[]}`, `{"name":""}`),
		}

		if _, err := f.resolver.selectDeprecatedConfig(context.Background(), groups, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.prompt.entries[1].Label != "Configuration #2" {
			t.Errorf("expected Configuration #2, got %q", f.prompt.entries[1].Label)
		}
		if f.prompt.entries[2].Label != "Configuration #3" {
			t.Errorf("expected Configuration #3, got %q", f.prompt.entries[2].Label)
		}
	})

	t.Run("single group does not warn", func(t *testing.T) {
		f := newFixture()
		groups := []domain.ExecutionConfigGroup{group(t, "A", `{"name":"A"}`)}

		if _, err := f.resolver.selectDeprecatedConfig(context.Background(), groups, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.notifier.warnings) != 0 {
			t.Errorf("unexpected warnings %v", f.notifier.warnings)
		}
	})
}
