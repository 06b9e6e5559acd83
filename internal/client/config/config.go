package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/mcauth/internal/client/services"
	"github.com/dmitrijs2005/mcauth/internal/gamedir"
)

// Config holds runtime settings for the launcher auth CLI.
//
// Fields:
//   - AuthURL, ProfileURL: the credential-exchange and profile endpoints.
//   - UserAgent: sent with every request.
//   - RequestTimeout: per-request HTTP timeout.
//   - GameDir: directory holding clientId.txt.
//   - LogFormat ("text"|"json"), LogLevel (debug|info|warn|error).
type Config struct {
	AuthURL        string        `env:"AUTH_URL"`
	ProfileURL     string        `env:"PROFILE_URL"`
	UserAgent      string        `env:"USER_AGENT"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	GameDir        string        `env:"GAME_DIR"`
	LogFormat      string        `env:"LOG_FORMAT"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with production defaults.
func (c *Config) LoadDefaults() {
	ep := services.DefaultEndpoints()
	c.AuthURL = ep.AuthURL
	c.ProfileURL = ep.ProfileURL
	c.UserAgent = ep.UserAgent
	c.RequestTimeout = 15 * time.Second
	c.GameDir = gamedir.Dir()
	c.LogFormat = "text"
	c.LogLevel = "warn"
}

// Endpoints returns the service endpoints described by c.
func (c *Config) Endpoints() services.Endpoints {
	return services.Endpoints{AuthURL: c.AuthURL, ProfileURL: c.ProfileURL, UserAgent: c.UserAgent}
}

// ClientIDFile returns the location of the client identifier file.
func (c *Config) ClientIDFile() string {
	return gamedir.ClientIDFile(c.GameDir)
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file
// (if -c/-config is given), MCAUTH_* environment variables and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
