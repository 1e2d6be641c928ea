package session

import (
	"time"

	"github.com/spf13/viper"
)

// Config locates the remote session endpoint and tunes the sync
// debounce.
type Config struct {
	URL         string
	QuietPeriod time.Duration
}

// LoadConfig reads the session settings from the same .gridstate
// config file and GRIDSTATE_* environment the cache config uses. An
// empty URL means no remote endpoint is configured.
func LoadConfig() Config {
	viper.SetDefault("session_url", "")
	viper.SetDefault("session_quiet_period", DefaultQuietPeriod.String())
	viper.SetConfigName(".gridstate")
	viper.SetEnvPrefix("GRIDSTATE")
	viper.AutomaticEnv()
	viper.AddConfigPath("./")
	_ = viper.ReadInConfig() // absent config file is fine, defaults apply

	quiet, err := time.ParseDuration(viper.GetString("session_quiet_period"))
	if err != nil {
		quiet = DefaultQuietPeriod
	}
	return Config{
		URL:         viper.GetString("session_url"),
		QuietPeriod: quiet,
	}
}

// NewClientFromConfig returns an HTTP client when an endpoint is
// configured and an in-process one otherwise, so callers always have a
// working session store.
func NewClientFromConfig(cfg Config) Client {
	if cfg.URL == "" {
		return NewMemoryClient()
	}
	return NewHTTPClient(cfg.URL)
}
