// Package config loads runtime configuration for the AutoPrime CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory plus AUTOPRIME_* environment
//     variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via -c / -config, or the
//     AUTOPRIME_CONFIG variable.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-l string   log level (debug, info, warn, error)
//	-o string   directory for exported service order documents
//	-m          keep everything in memory; nothing is written to disk
//	-i string   JSON snapshot to import on start
//
// # JSON schema
//
// "sink" is one of "fs", "s3" or "http". The http sink PUTs each document
// under "upload_url". Durations accept a string like "30s" or integer
// nanoseconds:
//
//	{
//	  "db_path": "autoprime.db",
//	  "log_level": "info",
//	  "log_backend": "logrus",
//	  "log_json": false,
//	  "documents_dir": "documents",
//	  "sink": "s3",
//	  "s3": {"bucket": "os-docs", "endpoint": "http://127.0.0.1:9000", "path_style": true},
//	  "upload_url": "",
//	  "upload_timeout": "30s",
//	  "warn_window_days": 30,
//	  "shop_name": "AutoPrime Oficina Pro"
//	}
package config
