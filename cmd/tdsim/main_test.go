package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShippedContent(t *testing.T) {
	dataDir, err := filepath.Abs(filepath.Join("..", "..", "data"))
	require.NoError(t, err)

	cfgPath := filepath.Join(t.TempDir(), "tdsim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
level_file: `+filepath.Join(dataDir, "level.yaml")+`
catalog_file: `+filepath.Join(dataDir, "catalog.yaml")+`
step: 50ms
max_duration: 30s
log_level: warn
`), 0o600))

	t.Setenv("TD_CONFIG", cfgPath)
	t.Setenv("TD_DATABASE_ENABLED", "false")

	require.NoError(t, run(context.Background()))
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "tdsim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("step: 0s\n"), 0o600))
	t.Setenv("TD_CONFIG", cfgPath)

	require.Error(t, run(context.Background()))
}
