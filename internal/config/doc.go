// Package config loads runtime configuration for the feedline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string   durable storage backend: bbolt or sqlite
//	-f string   durable storage file path
//	-k string   session token signing secret
//	-t int      session token validity (minutes)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the validity, so values can be
// either strings like "12h" or integer nanoseconds:
//
//	{
//	  "storage_backend": "bbolt",
//	  "storage_path": "feedline.db",
//	  "session_secret": "secretKey",
//	  "session_validity": "12h"
//	}
package config
