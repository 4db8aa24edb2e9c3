package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"runcfg/internal/domain"
)

// DefaultLegacyConfigPath is the deprecated configuration file, relative to the folder root
const DefaultLegacyConfigPath = ".vscode/launch.test.json"

// PickPlaceholder is the hint shown by the configuration prompt
const PickPlaceholder = "Select test config"

// Resolver picks the configuration used to execute a set of test items.
// It keeps no state between calls and is safe for concurrent use.
type Resolver struct {
	settings   SettingsProvider
	folders    FolderResolver
	legacy     LegacyStore
	notifier   Notifier
	prompt     Prompt
	legacyPath string
	logger     *zap.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLegacyPath overrides the location of the deprecated configuration file
func WithLegacyPath(path string) Option {
	return func(r *Resolver) {
		if path != "" {
			r.legacyPath = path
		}
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver with its collaborators
func New(settings SettingsProvider, folders FolderResolver, legacy LegacyStore, notifier Notifier, prompt Prompt, opts ...Option) *Resolver {
	r := &Resolver{
		settings:   settings,
		folders:    folders,
		legacy:     legacy,
		notifier:   notifier,
		prompt:     prompt,
		legacyPath: DefaultLegacyConfigPath,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LoadRunConfig selects the configuration for tests. All items must belong to
// the same workspace folder; only the first one is looked at.
//
// A nil config with a nil error means nothing applies and nothing should run.
func (r *Resolver) LoadRunConfig(ctx context.Context, tests []domain.TestItem, isDebug, usingDefaultConfig bool) (*domain.ExecutionConfig, error) {
	if len(tests) == 0 {
		return nil, nil
	}
	log := r.logger.With(
		zap.String("resolution", uuid.NewString()),
		zap.Bool("debug", isDebug),
		zap.Bool("default", usingDefaultConfig),
	)

	folder := r.folders.Resolve(tests[0].Location)
	if folder == nil {
		log.Debug("no workspace folder", zap.String("location", tests[0].Location))
		return nil, nil
	}
	log = log.With(zap.String("folder", folder.Path))

	configs, err := r.settings.ConfigList(ctx, *folder)
	if err != nil {
		return nil, fmt.Errorf("read settings for %s: %w", folder.Path, err)
	}
	if len(configs) > 0 {
		log.Debug("using settings configurations", zap.Int("count", len(configs)))
		if usingDefaultConfig {
			return &configs[0], nil
		}
		return r.selectQuickPick(ctx, configs)
	}

	doc, err := r.LegacyDocument(*folder)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		log.Debug("no configuration found")
		return nil, nil
	}
	log.Debug("using deprecated configuration file", zap.String("legacy", r.legacyPath))

	return r.selectDeprecatedConfig(ctx, []domain.ExecutionConfigGroup{doc.Group(isDebug)}, usingDefaultConfig)
}

// LegacyDocument reads the deprecated configuration file of folder.
// It returns nil when the folder has no such file.
func (r *Resolver) LegacyDocument(folder domain.WorkspaceFolder) (*domain.LegacyDocument, error) {
	path := filepath.Join(folder.Path, filepath.FromSlash(r.legacyPath))
	if !r.legacy.Exists(path) {
		return nil, nil
	}
	text, err := r.legacy.ReadText(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc domain.LegacyDocument
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}
