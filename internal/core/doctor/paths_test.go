package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsCheck_AllExist(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "passport.db")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	check := NewPathsCheck(
		Path{Label: "data dir", Path: dir, Dir: true},
		Path{Label: "database", Path: file},
	)
	result := check.Run(context.Background())

	assert.Equal(t, "Paths", result.Name)
	require.Len(t, result.Items, 2)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, StatusPass, result.Items[1].Status)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "writability probe cleans up after itself")
}

func TestPathsCheck_Missing(t *testing.T) {
	check := NewPathsCheck(Path{Label: "data dir", Path: "/nonexistent/path/abc123", Dir: true})
	result := check.Run(context.Background())

	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusWarn, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "does not exist")
}

func TestPathsCheck_WrongKind(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notadir")
	require.NoError(t, os.WriteFile(file, []byte("test"), 0o644))

	result := NewPathsCheck(
		Path{Label: "data dir", Path: file, Dir: true},
		Path{Label: "config", Path: dir},
	).Run(context.Background())

	require.Len(t, result.Items, 2)
	assert.Equal(t, StatusFail, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "not a directory")
	assert.Equal(t, StatusFail, result.Items[1].Status)
	assert.Contains(t, result.Items[1].Detail, "is a directory")
}
