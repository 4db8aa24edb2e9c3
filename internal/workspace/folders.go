package workspace

import (
	"path/filepath"
	"strings"

	"runcfg/internal/domain"
)

// Folders resolves test locations to the workspace folder that contains them
type Folders struct {
	folders []domain.WorkspaceFolder
}

// NewFolders creates Folders from a list of root paths
func NewFolders(roots []string) *Folders {
	folders := make([]domain.WorkspaceFolder, 0, len(roots))
	for _, root := range roots {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		root = filepath.Clean(root)
		folders = append(folders, domain.WorkspaceFolder{
			Name: filepath.Base(root),
			Path: root,
		})
	}
	return &Folders{folders: folders}
}

// List returns the configured folders
func (f *Folders) List() []domain.WorkspaceFolder {
	return append([]domain.WorkspaceFolder(nil), f.folders...)
}

// Resolve returns the deepest folder containing location, or nil if none does
func (f *Folders) Resolve(location string) *domain.WorkspaceFolder {
	if location == "" {
		return nil
	}
	if abs, err := filepath.Abs(location); err == nil {
		location = abs
	}
	location = filepath.Clean(location)

	var best *domain.WorkspaceFolder
	for i := range f.folders {
		folder := &f.folders[i]
		if !contains(folder.Path, location) {
			continue
		}
		if best == nil || len(folder.Path) > len(best.Path) {
			best = folder
		}
	}
	if best == nil {
		return nil
	}
	found := *best
	return &found
}

func contains(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
