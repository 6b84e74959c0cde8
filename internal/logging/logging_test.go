package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "api.log")

	logger, err := New(Options{Mode: "production", File: file})
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"msg":"hello"`)
}

func TestNewFileOnly(t *testing.T) {
	file := filepath.Join(t.TempDir(), "storefront.log")

	logger, err := New(Options{File: file, FileOnly: true})
	require.NoError(t, err)
	logger.Debug("quiet")
	_ = logger.Sync()

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"msg":"quiet"`)
}
