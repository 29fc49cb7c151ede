package config

import "time"

// Config holds runtime settings for the traveldesk console.
//
// Fields:
//   - StoreEndpointAddr: base URL of the backend REST store.
//   - RequestTimeout: the console's own time budget for a single store
//     call, independent of any transport-level timeout.
//   - StateFile: where the signed session state is kept between runs.
//   - SessionSecret: HMAC key for the session state signature.
type Config struct {
	StoreEndpointAddr string
	RequestTimeout    time.Duration
	StateFile         string
	SessionSecret     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreEndpointAddr = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
	c.StateFile = ".traveldesk-session"
	c.SessionSecret = "traveldesk-local"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
