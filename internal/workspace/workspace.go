package workspace

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/go-mpxj/internal/config"
	"github.com/jakoblorz/go-mpxj/internal/filesystem"
)

// Workspace is a directory tree holding MPXJ exports. Its root is the
// directory of the nearest .mpxj.yaml, or the working directory when there
// is none.
type Workspace struct {
	fs       filesystem.FileSystem
	RootPath string
	Config   *config.Config
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem) *Workspace {
	return &Workspace{
		fs:     fs,
		Config: config.Default(),
	}
}

// Detect finds the workspace root and loads its config.
func (w *Workspace) Detect() error {
	cwd, err := w.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(w.fs, cwd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	w.Config = cfg
	w.RootPath = cwd
	if dir := cfg.Dir(); dir != "" {
		w.RootPath = dir
	}

	return nil
}

// Resolve turns a user supplied export path into an absolute one.
func (w *Workspace) Resolve(path string) (string, error) {
	abs, err := w.fs.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// Scan lists the export files below dir (the root when empty) matching the
// include patterns. Paths ignored by the root .gitignore and hidden
// directories are skipped.
func (w *Workspace) Scan(dir string) ([]string, error) {
	if dir == "" {
		dir = w.RootPath
	}
	dir, err := w.Resolve(dir)
	if err != nil {
		return nil, err
	}

	ignore, err := w.loadRootGitIgnore()
	if err != nil {
		return nil, err
	}

	var exports []string
	err = w.fs.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == dir {
			return nil
		}

		if entry.IsDir() && strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}

		if ignore != nil {
			if rel, ok := w.relative(path); ok {
				if match := ignore.Relative(rel, entry.IsDir()); match != nil && match.Ignore() {
					if entry.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}
		}

		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if w.included(filepath.ToSlash(rel)) {
			exports = append(exports, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Strings(exports)
	return exports, nil
}

// included matches a slash separated path against the include patterns.
// Patterns without a slash match the file name in any directory.
func (w *Workspace) included(rel string) bool {
	for _, pattern := range w.Config.Include {
		target := rel
		if !strings.Contains(pattern, "/") {
			target = filepath.Base(rel)
		}
		if ok, _ := filepath.Match(pattern, target); ok {
			return true
		}
	}
	return false
}

func (w *Workspace) relative(path string) (string, bool) {
	if w.RootPath == "" {
		return "", false
	}
	rel, err := filepath.Rel(w.RootPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (w *Workspace) loadRootGitIgnore() (gitignore.GitIgnore, error) {
	if w.RootPath == "" {
		return nil, nil
	}

	ignorePath := filepath.Join(w.RootPath, ".gitignore")
	if !w.fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := w.fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), w.RootPath, nil), nil
}
