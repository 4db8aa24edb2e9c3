package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"runcfg/internal/domain"
)

type fakeSettings struct {
	configs []domain.ExecutionConfig
	err     error
	calls   int
}

func (f *fakeSettings) ConfigList(ctx context.Context, folder domain.WorkspaceFolder) ([]domain.ExecutionConfig, error) {
	f.calls++
	return f.configs, f.err
}

type fakeFolders struct {
	folder *domain.WorkspaceFolder
}

func (f *fakeFolders) Resolve(location string) *domain.WorkspaceFolder {
	return f.folder
}

type fakeStore struct {
	files map[string]string
	reads int
}

func (f *fakeStore) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *fakeStore) ReadText(path string) (string, error) {
	f.reads++
	text, ok := f.files[path]
	if !ok {
		return "", errors.New("not found")
	}
	return text, nil
}

type fakeNotifier struct {
	warnings []string
}

func (f *fakeNotifier) Warn(message string) {
	f.warnings = append(f.warnings, message)
}

type fakePrompt struct {
	choice      int
	dismiss     bool
	err         error
	entries     []PickEntry
	placeholder string
	calls       int
}

func (f *fakePrompt) Pick(ctx context.Context, entries []PickEntry, placeholder string) (int, bool, error) {
	f.calls++
	f.entries = entries
	f.placeholder = placeholder
	if f.err != nil {
		return 0, false, f.err
	}
	if f.dismiss {
		return 0, false, nil
	}
	return f.choice, true, nil
}

type fixture struct {
	settings *fakeSettings
	folders  *fakeFolders
	store    *fakeStore
	notifier *fakeNotifier
	prompt   *fakePrompt
	resolver *Resolver
}

const folderPath = "/work/project"

func newFixture() *fixture {
	f := &fixture{
		settings: &fakeSettings{},
		folders:  &fakeFolders{folder: &domain.WorkspaceFolder{Name: "project", Path: folderPath}},
		store:    &fakeStore{files: map[string]string{}},
		notifier: &fakeNotifier{},
		prompt:   &fakePrompt{},
	}
	f.resolver = New(f.settings, f.folders, f.store, f.notifier, f.prompt)
	return f
}

func (f *fixture) writeLegacy(text string) {
	f.store.files[filepath.Join(folderPath, filepath.FromSlash(DefaultLegacyConfigPath))] = text
}

func mustConfig(t *testing.T, text string) domain.ExecutionConfig {
	t.Helper()
	var c domain.ExecutionConfig
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		t.Fatalf("invalid config %s: %v", text, err)
	}
	return c
}

var items = []domain.TestItem{{ID: "a", Location: folderPath + "/src/ATest.java"}}

func TestLoadRunConfig_NoFolder(t *testing.T) {
	f := newFixture()
	f.folders.folder = nil

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected no selection, got %v", cfg)
	}
	if f.settings.calls != 0 {
		t.Errorf("settings should not be queried without a folder")
	}
}

func TestLoadRunConfig_NoItems(t *testing.T) {
	f := newFixture()

	cfg, err := f.resolver.LoadRunConfig(context.Background(), nil, false, true)
	if err != nil || cfg != nil {
		t.Errorf("expected no selection, got %v, %v", cfg, err)
	}
}

func TestLoadRunConfig_SettingsDefaultIsFirst(t *testing.T) {
	tests := []struct {
		name    string
		configs []string
	}{
		{name: "single", configs: []string{`{"name":"only"}`}},
		{name: "unnamed first", configs: []string{`{"vmArgs":["-Xmx1g"]}`, `{"name":"second"}`}},
		{name: "duplicates", configs: []string{`{"name":"x","env":{"A":"1"}}`, `{"name":"x"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			for _, c := range tt.configs {
				f.settings.configs = append(f.settings.configs, mustConfig(t, c))
			}
			f.writeLegacy(`{"run":{"items":[{"name":"legacy"}],"default":"legacy"}}`)

			cfg, err := f.resolver.LoadRunConfig(context.Background(), items, false, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg == nil || string(cfg.Raw) != tt.configs[0] {
				t.Errorf("expected first config %s, got %v", tt.configs[0], cfg)
			}
			if f.prompt.calls != 0 {
				t.Errorf("prompt should not be shown in default mode")
			}
			if f.store.reads != 0 {
				t.Errorf("legacy file should not be read when settings are present")
			}
		})
	}
}

func TestLoadRunConfig_SettingsPick(t *testing.T) {
	f := newFixture()
	f.settings.configs = []domain.ExecutionConfig{
		mustConfig(t, `{"name":"fast"}`),
		mustConfig(t, `{"args":["-v"]}`),
	}
	f.prompt.choice = 1

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || string(cfg.Raw) != `{"args":["-v"]}` {
		t.Errorf("expected second config, got %v", cfg)
	}
	if f.prompt.placeholder != PickPlaceholder {
		t.Errorf("expected placeholder %q, got %q", PickPlaceholder, f.prompt.placeholder)
	}
	labels := []string{f.prompt.entries[0].Label, f.prompt.entries[1].Label}
	if labels[0] != "fast" || labels[1] != "Configuration #2" {
		t.Errorf("unexpected labels %v", labels)
	}
	if f.prompt.entries[1].Detail != `{"args":["-v"]}` {
		t.Errorf("unexpected detail %q", f.prompt.entries[1].Detail)
	}
}

func TestLoadRunConfig_SettingsError(t *testing.T) {
	f := newFixture()
	f.settings.err = errors.New("boom")

	_, err := f.resolver.LoadRunConfig(context.Background(), items, false, true)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected settings error, got %v", err)
	}
}

func TestLoadRunConfig_Legacy(t *testing.T) {
	doc := `{
		"run": {"items": [{"name": "r1"}, {"name": "r2"}], "default": "r2"},
		"debug": {"items": [{"name": "d1"}], "default": "d1"}
	}`

	tests := []struct {
		name     string
		legacy   string
		isDebug  bool
		expected string
	}{
		{name: "run group default", legacy: doc, isDebug: false, expected: "r2"},
		{name: "debug group default", legacy: doc, isDebug: true, expected: "d1"},
		{name: "missing group", legacy: `{"run": {"items": [{"name": "r1"}], "default": "r1"}}`, isDebug: true, expected: ""},
		{name: "empty default", legacy: `{"run": {"items": [{"name": "r1"}], "default": ""}}`, isDebug: false, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.writeLegacy(tt.legacy)

			cfg, err := f.resolver.LoadRunConfig(context.Background(), items, tt.isDebug, true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expected == "" {
				if cfg != nil {
					t.Errorf("expected no selection, got %v", cfg)
				}
				return
			}
			if cfg == nil || cfg.Name != tt.expected {
				t.Errorf("expected %s, got %v", tt.expected, cfg)
			}
			if len(f.notifier.warnings) != 0 {
				t.Errorf("unexpected warnings %v", f.notifier.warnings)
			}
		})
	}
}

func TestLoadRunConfig_LegacyMissing(t *testing.T) {
	f := newFixture()
	f.settings.configs = []domain.ExecutionConfig{}

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, false, false)
	if err != nil || cfg != nil {
		t.Errorf("expected no selection, got %v, %v", cfg, err)
	}
	if f.prompt.calls != 0 {
		t.Errorf("prompt should not be shown")
	}
}

func TestLoadRunConfig_EmptySettingsUsesLegacy(t *testing.T) {
	f := newFixture()
	f.settings.configs = []domain.ExecutionConfig{}
	f.writeLegacy(`{"run": {"items": [{"name": "a"}, {"name": "b"}], "default": "b"}}`)

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || cfg.Name != "b" {
		t.Errorf("expected legacy default b, got %v", cfg)
	}
}

func TestLoadRunConfig_LegacyNullItemsNotOffered(t *testing.T) {
	f := newFixture()
	f.writeLegacy(`{"run": {"items": [null, {"name": "a"}], "default": ""}}`)

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.prompt.entries) != 1 || f.prompt.entries[0].Label != "a" {
		t.Errorf("expected a single entry a, got %+v", f.prompt.entries)
	}
	if cfg == nil || cfg.Name != "a" {
		t.Errorf("expected a, got %v", cfg)
	}
}

func TestLoadRunConfig_LegacyMalformed(t *testing.T) {
	f := newFixture()
	f.writeLegacy(`{"run": [`)

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, false, true)
	if err == nil {
		t.Fatalf("expected parse error, got %v", cfg)
	}
	if !strings.Contains(err.Error(), "launch.test.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestLoadRunConfig_LegacyCustomPath(t *testing.T) {
	f := newFixture()
	f.resolver = New(f.settings, f.folders, f.store, f.notifier, f.prompt, WithLegacyPath("config/tests.json"))
	f.store.files[filepath.Join(folderPath, "config", "tests.json")] = `{"run":{"items":[{"name":"a"}],"default":"a"}}`

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || cfg.Name != "a" {
		t.Errorf("expected a, got %v", cfg)
	}
}

func TestLoadRunConfig_LegacyPick(t *testing.T) {
	f := newFixture()
	f.writeLegacy(`{"debug": {"items": [{"name": "d1"}, {"port": 5005}], "default": "d1"}}`)
	f.prompt.choice = 1

	cfg, err := f.resolver.LoadRunConfig(context.Background(), items, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || string(cfg.Raw) != `{"port": 5005}` {
		t.Errorf("unexpected selection %v", cfg)
	}
	if len(f.notifier.warnings) != 0 {
		t.Errorf("single group should not warn: %v", f.notifier.warnings)
	}
}

func TestLoadRunConfig_Deterministic(t *testing.T) {
	f := newFixture()
	f.writeLegacy(`{"run": {"items": [{"name": "a"}, {"name": "b"}], "default": "b"}}`)

	first, err := f.resolver.LoadRunConfig(context.Background(), items, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := f.resolver.LoadRunConfig(context.Background(), items, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil || second == nil || string(first.Raw) != string(second.Raw) {
		t.Errorf("expected identical results, got %v and %v", first, second)
	}
	if f.store.reads != 2 {
		t.Errorf("expected the file to be read on every call, got %d reads", f.store.reads)
	}
}
