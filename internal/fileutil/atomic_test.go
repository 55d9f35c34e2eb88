package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "hands.txt")

	require.NoError(t, WriteFileAtomic(path, []byte("5c 6c 7c 8c 9c\n"), 0o644))
	require.NoError(t, WriteFileAtomic(path, []byte("Kh 10d 2s 3h 4c\n"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Kh 10d 2s 3h 4c\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not remain")
	assert.Equal(t, "hands.txt", entries[0].Name())
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "out.json"), []byte("{}"), 0o644)
	assert.Error(t, err)
}

func TestWriteJSONAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.json")
	in := []map[string]string{{"hand": "Kc Kd Ks 3d 3c", "category": "Full House"}}
	require.NoError(t, WriteJSONAtomic(path, in, 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []map[string]string
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
