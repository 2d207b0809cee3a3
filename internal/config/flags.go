package config

import (
	"flag"
	"os"
	"time"

	"github.com/nymphhq/nymph/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-m string   persistence mode, "hosted" or "local"
//	-d string   PostgreSQL DSN (hosted mode)
//	-f string   SQLite database file path (local mode)
//	-n string   snapshot cache directory
//	-x string   export directory
//	-P string   settings PIN
//	-s string   session token HMAC secret key
//	-t int      session TTL, minutes
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-d", "-f", "-n", "-x", "-P", "-s", "-t", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Mode, "m", cfg.Mode, "persistence mode (hosted or local)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "SQLite database file path")
	fs.StringVar(&cfg.SnapshotDir, "n", cfg.SnapshotDir, "snapshot cache directory")
	fs.StringVar(&cfg.ExportDir, "x", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.PIN, "P", cfg.PIN, "settings PIN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")

	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Minutes()), "session_ttl (in minutes)")

	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "p", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
