package config

// Config holds runtime settings for the calendar CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend HTTP API.
//   - DatabasePath: path to the local SQLite mirror database.
type Config struct {
	ServerAddr   string
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.DatabasePath = "calendar.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
