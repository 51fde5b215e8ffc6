package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bitrot.dev/pkg/bitrot/internal/model"
)

func TestLocalFileAdapter_WriteAndRead(t *testing.T) {
	adapter := NewLocalFileAdapter()
	path := filepath.Join(t.TempDir(), "original.bin")
	content := []byte{0x00, 0xff, 0x10, 0x20}

	require.NoError(t, adapter.WriteFile(m.Path(path), content))

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, got)

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerms), info.Mode().Perm())
}

func TestLocalFileAdapter_WriteOverwrites(t *testing.T) {
	adapter := NewLocalFileAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "f.bin"))

	require.NoError(t, adapter.WriteFile(path, []byte("longer content")))
	require.NoError(t, adapter.WriteFile(path, []byte("short")))

	got, err := adapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("short"), got)
}

func TestLocalFileAdapter_WriteKeepsExistingMode(t *testing.T) {
	adapter := NewLocalFileAdapter()
	path := filepath.Join(t.TempDir(), "corrupted.bin")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0o600))

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte("after")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLocalFileAdapter_WriteMissingDirectory(t *testing.T) {
	adapter := NewLocalFileAdapter()
	root := t.TempDir()

	err := adapter.WriteFile(m.Path(filepath.Join(root, "missing", "dst.bin")), []byte{1})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "missing"))
	assert.ErrorIs(t, statErr, os.ErrNotExist, "parent directories are not created")
}

func TestLocalFileAdapter_HashFile(t *testing.T) {
	adapter := NewLocalFileAdapter()
	path := filepath.Join(t.TempDir(), "f.bin")
	content := []byte("fixture")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	got, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(content)), got)

	_, err = adapter.HashFile(m.Path(filepath.Join(t.TempDir(), "none")))
	assert.Error(t, err)
}

func TestEntropySource(t *testing.T) {
	buf := make([]byte, 64)
	n, err := NewEntropySource().Read(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
}
