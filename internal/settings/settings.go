package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
	"go.uber.org/zap"

	"runcfg/internal/config"
	"runcfg/internal/domain"
)

// FileProvider reads the configuration list from a JSON settings file in each folder
type FileProvider struct {
	file   string
	key    string
	logger *zap.Logger
}

// NewFileProvider returns a provider for the config's settings file and key
func NewFileProvider(cfg *config.Config, logger *zap.Logger) *FileProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileProvider{
		file:   cfg.SettingsFile,
		key:    cfg.SettingsKey,
		logger: logger,
	}
}

// ConfigList returns the configurations stored under the settings key, or nil
// when the folder has none. A single object is treated as a one-item list.
func (p *FileProvider) ConfigList(ctx context.Context, folder domain.WorkspaceFolder) ([]domain.ExecutionConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(folder.Path, filepath.FromSlash(p.file))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	// Settings files may carry comments and trailing commas
	data, err = hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	raw, ok := values[p.key]
	if !ok {
		return nil, nil
	}

	var list []json.RawMessage
	switch {
	case domain.IsObject(raw):
		list = []json.RawMessage{raw}
	case json.Unmarshal(raw, &list) == nil:
	default:
		p.logger.Debug("ignoring settings value", zap.String("key", p.key), zap.String("file", path))
		return nil, nil
	}

	configs := make([]domain.ExecutionConfig, 0, len(list))
	for i, item := range list {
		if !domain.IsObject(item) {
			p.logger.Debug("skipping non-object configuration", zap.Int("index", i), zap.String("file", path))
			continue
		}
		var c domain.ExecutionConfig
		if err := json.Unmarshal(item, &c); err != nil {
			return nil, fmt.Errorf("parse %s[%d] in %s: %w", p.key, i, path, err)
		}
		configs = append(configs, c)
	}
	return configs, nil
}
