package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mcauth/internal/flagx"
	"github.com/dmitrijs2005/mcauth/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Every field is
// optional; absent fields keep their current value. Durations may be "15s"
// strings or integer nanoseconds.
type JsonConfig struct {
	AuthURL        string          `json:"auth_url"`
	ProfileURL     string          `json:"profile_url"`
	UserAgent      string          `json:"user_agent"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	GameDir        string          `json:"game_dir"`
	LogFormat      string          `json:"log_format"`
	LogLevel       string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args. It does
// nothing when no file is given and panics on read or decode errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.AuthURL, jc.AuthURL)
	setIfNotEmpty(&cfg.ProfileURL, jc.ProfileURL)
	setIfNotEmpty(&cfg.UserAgent, jc.UserAgent)
	setIfNotEmpty(&cfg.GameDir, jc.GameDir)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
