package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, 16, c.BucketSize)
	require.Equal(t, uint32(15), c.MaxK)
	require.Equal(t, 1024, c.PoolSize)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_k: 25\nbucket_size: 32\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(25), c.MaxK)
	require.Equal(t, 32, c.BucketSize)
	require.Equal(t, DefaultPoolSize, c.PoolSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}
