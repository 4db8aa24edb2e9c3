package resolver

import (
	"context"

	"runcfg/internal/domain"
)

// SettingsProvider returns the configuration list stored in a folder's settings.
// A nil or empty list means the folder has no configurations in the current format.
type SettingsProvider interface {
	ConfigList(ctx context.Context, folder domain.WorkspaceFolder) ([]domain.ExecutionConfig, error)
}

// FolderResolver maps a test location to the workspace folder that owns it
type FolderResolver interface {
	Resolve(location string) *domain.WorkspaceFolder
}

// LegacyStore gives read access to the deprecated configuration file
type LegacyStore interface {
	Exists(path string) bool
	ReadText(path string) (string, error)
}

// Notifier shows warnings to the user without blocking
type Notifier interface {
	Warn(message string)
}

// PickEntry is one choice offered by a Prompt
type PickEntry struct {
	Label  string
	Detail string
}

// Prompt asks the user to choose one entry. It blocks until the user answers
// or ctx is done. ok is false when the prompt was dismissed without a choice.
type Prompt interface {
	Pick(ctx context.Context, entries []PickEntry, placeholder string) (index int, ok bool, err error)
}
