package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nymphhq/nymph/internal/flagx"
	"github.com/nymphhq/nymph/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the session TTL either as
// a string like "10m" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	Mode           string         `json:"mode"`
	DatabaseDSN    string         `json:"database_dsn"`
	SQLitePath     string         `json:"sqlite_path"`
	SnapshotDir    string         `json:"snapshot_dir"`
	ExportDir      string         `json:"export_dir"`
	PIN            string         `json:"pin"`
	SecretKey      string         `json:"secret_key"`
	SessionTTL     timex.Duration `json:"session_ttl"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors. Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	// only keys present in the file override the defaults
	setString(&cfg.Mode, c.Mode)
	setString(&cfg.DatabaseDSN, c.DatabaseDSN)
	setString(&cfg.SQLitePath, c.SQLitePath)
	setString(&cfg.SnapshotDir, c.SnapshotDir)
	setString(&cfg.ExportDir, c.ExportDir)
	setString(&cfg.PIN, c.PIN)
	setString(&cfg.SecretKey, c.SecretKey)
	if c.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(c.SessionTTL.Duration)
	}
	setString(&cfg.S3AccessKey, c.S3AccessKey)
	setString(&cfg.S3SecretKey, c.S3SecretKey)
	setString(&cfg.S3Bucket, c.S3Bucket)
	setString(&cfg.S3Region, c.S3Region)
	setString(&cfg.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
