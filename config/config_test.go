package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	path := writeTemp(t, "n: 7\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 7, cfg.N)
	require.Equal(t, defaults.K, cfg.K)
	require.Equal(t, defaults.Hardcode, cfg.Hardcode)
}

func TestLoadFullySpecified(t *testing.T) {
	path := writeTemp(t, "n: 4\nk: 16\nhardcode: false\nseed: abc123\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, Demo{N: 4, K: 16, Hardcode: false, Seed: "abc123"}, cfg)
}

func TestLoadRejectsInvalidN(t *testing.T) {
	path := writeTemp(t, "n: 1\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsOversizedK(t *testing.T) {
	d := Demo{N: 3, K: 64}
	require.Error(t, d.Validate())
}
