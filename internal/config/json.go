package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/olehkhomyk/feedline/internal/flagx"
	"github.com/olehkhomyk/feedline/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the session validity either as a
// string like "12h" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	StorageBackend  string         `json:"storage_backend"`
	StoragePath     string         `json:"storage_path"`
	SessionSecret   string         `json:"session_secret"`
	SessionValidity timex.Duration `json:"session_validity"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c or -config flags (flagx.JsonConfigFlags). When no file is
// given, nothing happens. Read or unmarshal errors panic; intended usage is
// defaults -> parseJson -> parseFlags, later stages overriding earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.StorageBackend = jc.StorageBackend
	cfg.StoragePath = jc.StoragePath
	cfg.SessionSecret = jc.SessionSecret
	cfg.SessionValidity = time.Duration(jc.SessionValidity.Duration)
}
