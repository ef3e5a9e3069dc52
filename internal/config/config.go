package config

import "time"

// Backend names accepted for the durable storage gateway.
const (
	BackendBBolt  = "bbolt"
	BackendSQLite = "sqlite"
)

// Config holds runtime settings for the feedline CLI.
//
// Fields:
//   - StorageBackend: durable store implementation, "bbolt" or "sqlite".
//   - StoragePath: file path of the durable store.
//   - SessionSecret: HMAC secret for signing session tokens (HS256).
//   - SessionValidity: session token lifetime.
type Config struct {
	StorageBackend  string
	StoragePath     string
	SessionSecret   string
	SessionValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
// NOTE: the default secret is fine for a local demo, nothing else.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendBBolt
	c.StoragePath = "feedline.db"
	c.SessionSecret = "secretKey"
	c.SessionValidity = 12 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
