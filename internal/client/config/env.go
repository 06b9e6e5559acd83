package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the environment variables read by parseEnv.
const EnvPrefix = "MCAUTH_"

// parseEnv overlays cfg with MCAUTH_* variables. Unset variables leave the
// current value alone; a malformed value panics.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
