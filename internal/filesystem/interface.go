package filesystem

import (
	"io/fs"
)

// FileSystem is the file access used by the reader, config discovery and
// workspace scan. Tests swap in MockFileSystem.
type FileSystem interface {
	// File operations
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)
	Abs(path string) (string, error)

	// File walking
	WalkDir(root string, fn fs.WalkDirFunc) error
}
