package app

import (
	"path/filepath"
	"testing"

	"github.com/dori/actionary/internal/config"
	"github.com/dori/actionary/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Backend = backend
	cfg.DataDir = dir
	cfg.File = filepath.Join(dir, "tasks.json")
	cfg.DBPath = filepath.Join(dir, "tasks.db")
	return cfg
}

func TestNewPersistsAcrossInstances(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t, backend)

			a, err := New(cfg, logging.Discard())
			require.NoError(t, err)
			require.True(t, a.Store.Add("Buy milk"))
			require.NoError(t, a.Close())

			b, err := New(cfg, logging.Discard())
			require.NoError(t, err)
			defer b.Close()
			require.Equal(t, 1, b.Store.Len())
			assert.Equal(t, "Buy milk", b.Store.Tasks()[0].Text)
		})
	}
}

func TestSecondInstanceIsRejected(t *testing.T) {
	cfg := testConfig(t, config.BackendJSON)

	a, err := New(cfg, logging.Discard())
	require.NoError(t, err)
	defer a.Close()

	_, err = New(cfg, logging.Discard())
	assert.Error(t, err)
}
