package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseJson_OverlaysConfig(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{
		"mode": "hosted",
		"database_dsn": "postgres://u:p@db:5432/nymph",
		"sqlite_path": "alt.db",
		"snapshot_dir": "/var/lib/nymph/snapshot",
		"export_dir": "/exports",
		"pin": "4321",
		"secret_key": "k",
		"session_ttl": "15m",
		"s3_bucket": "nymph-exports",
		"s3_region": "eu-west-1",
		"s3_base_endpoint": "http://127.0.0.1:9000/"
	}`)
	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ModeHosted, cfg.Mode)
	assert.Equal(t, "postgres://u:p@db:5432/nymph", cfg.DatabaseDSN)
	assert.Equal(t, "alt.db", cfg.SQLitePath)
	assert.Equal(t, "/var/lib/nymph/snapshot", cfg.SnapshotDir)
	assert.Equal(t, "/exports", cfg.ExportDir)
	assert.Equal(t, "4321", cfg.PIN)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "nymph-exports", cfg.S3Bucket)
	assert.Equal(t, "eu-west-1", cfg.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000/", cfg.S3BaseEndpoint)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{"pin": "9999"}`)
	os.Args = []string{"testbin", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "9999", cfg.PIN)
	assert.Equal(t, ModeLocal, cfg.Mode)
	assert.Equal(t, "nymph.db", cfg.SQLitePath)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
}

func TestParseJson_NoFlagNoOverlay(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ModeLocal, cfg.Mode)
}

func TestJsonConfig_DurationForms(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"session_ttl": 600000000000}`), &jc))
	assert.Equal(t, 10*time.Minute, time.Duration(jc.SessionTTL.Duration))

	require.NoError(t, json.Unmarshal([]byte(`{"session_ttl": "10m"}`), &jc))
	assert.Equal(t, 10*time.Minute, time.Duration(jc.SessionTTL.Duration))
}
