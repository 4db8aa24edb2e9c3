package domain

// TestItem represents a test to be executed
type TestItem struct {
	ID       string // Stable identifier (defaults to the path)
	Location string // Path of the file or directory holding the test
}

// WorkspaceFolder is a root directory that owns test items and their settings
type WorkspaceFolder struct {
	Name string
	Path string // Absolute path to the folder root
}
