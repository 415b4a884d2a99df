package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mendoc-dev/mendoc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "matrix.py"), "x = 1\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.py"), "y = 2\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.py")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "matrix.py")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "matrix.py"), "x = 1\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.py")
		writeTestFile(t, child, "y = 2\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "matrix.py")
	content := "def det(m):\n" + "    return 0\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "matrix.py.fixed")
	content := []byte("x = 1\n")

	require.NoError(t, adapter.WriteFile(m.Path(path), content, 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, content, got)
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "matrix.py")
	content := []byte("x = 1\ny = 2\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, expected, hash)
}

func TestLocalSourceFSAdapter_HashFile_Missing(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	_, err := adapter.HashFile(m.Path(filepath.Join(t.TempDir(), "absent.py")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "matrix.py")
	writeTestFile(t, path, "x = 1\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)

	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func TestLocalSourceFSAdapter_NormalizeRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	t.Run("dot resolves to current directory", func(t *testing.T) {
		root := t.TempDir()

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(root))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		resolved, err := os.Getwd()
		require.NoError(t, err)

		got, recursive, err := adapter.NormalizeRoot(".")
		require.NoError(t, err)

		assert.Equal(t, m.Path(resolved), got)
		assert.False(t, recursive)
	})

	t.Run("go style suffix marks root recursive", func(t *testing.T) {
		root := t.TempDir()

		got, recursive, err := adapter.NormalizeRoot(m.Path(root + "/..."))
		require.NoError(t, err)

		assert.Equal(t, m.Path(root), got)
		assert.True(t, recursive)
	})

	t.Run("plain absolute path is not recursive", func(t *testing.T) {
		root := t.TempDir()

		got, recursive, err := adapter.NormalizeRoot(m.Path(root))
		require.NoError(t, err)

		assert.Equal(t, m.Path(root), got)
		assert.False(t, recursive)
	})

	t.Run("tilde expands home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, recursive, err := adapter.NormalizeRoot("~")
		require.NoError(t, err)

		assert.Equal(t, m.Path(home), got)
		assert.False(t, recursive)
	})

	t.Run("tilde with subpath and recursive suffix", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, recursive, err := adapter.NormalizeRoot("~/docs/...")
		require.NoError(t, err)

		assert.Equal(t, m.Path(filepath.Join(home, "docs")), got)
		assert.True(t, recursive)
	})
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
