package storage

// Store gives read access to configuration files on disk
type Store interface {
	Exists(path string) bool
	ReadText(path string) (string, error)
}
