package filesystem

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockFileSystem_RelativePaths(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("exports/plan.json", []byte(`{}`))

	require.True(t, mfs.Exists("/workspace/exports/plan.json"))
	require.True(t, mfs.Exists("/workspace/exports"))

	data, err := mfs.ReadFile("exports/plan.json")
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))

	abs, err := mfs.Abs("exports/../exports/plan.json")
	require.NoError(t, err)
	require.Equal(t, "/workspace/exports/plan.json", abs)

	_, err = mfs.ReadFile("missing.json")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMockFileSystem_WriteFileNeedsParent(t *testing.T) {
	mfs := NewMockFileSystem()

	err := mfs.WriteFile("/workspace/out/tasks.json", []byte("[]"), 0644)
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, mfs.MkdirAll("/workspace/out", 0755))
	require.NoError(t, mfs.WriteFile("/workspace/out/tasks.json", []byte("[]"), 0644))

	info, err := mfs.Stat("/workspace/out/tasks.json")
	require.NoError(t, err)
	require.Equal(t, "tasks.json", info.Name())
	require.Equal(t, int64(2), info.Size())
}

func TestMockFileSystem_WalkDirSkipDir(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/workspace/a.json", nil)
	mfs.AddFile("/workspace/vendor/b.json", nil)
	mfs.AddFile("/workspace/vendor/deep/c.json", nil)
	mfs.AddFile("/workspace/z/d.json", nil)

	var visited []string
	err := mfs.WalkDir("/workspace", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() && filepath.Base(path) == "vendor" {
			return filepath.SkipDir
		}
		if !d.IsDir() {
			visited = append(visited, path)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"/workspace/a.json", "/workspace/z/d.json"}, visited)
}

func TestMockFileSystem_WalkDirMissingRoot(t *testing.T) {
	mfs := NewMockFileSystem()

	err := mfs.WalkDir("/nowhere", func(path string, d fs.DirEntry, err error) error {
		return err
	})
	require.ErrorIs(t, err, fs.ErrNotExist)
}
