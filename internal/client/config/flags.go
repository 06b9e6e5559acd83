package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/mcauth/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-auth-url string     credential-exchange endpoint
//	-profile-url string  profile endpoint
//	-t int               request timeout in seconds
//	-d string            game directory holding clientId.txt
//	-log-format string   text or json
//	-log-level string    debug, info, warn or error
//
// Only these flags are picked out of args, so -c/-config and anything else
// is left to other parsers.
func parseFlags(cfg *Config, args []string) {
	args = flagx.Pick(args, "auth-url", "profile-url", "t", "d", "log-format", "log-level")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthURL, "auth-url", cfg.AuthURL, "credential-exchange endpoint")
	fs.StringVar(&cfg.ProfileURL, "profile-url", cfg.ProfileURL, "profile endpoint")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.GameDir, "d", cfg.GameDir, "game directory")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t has whole-second resolution; leave JSON/env values alone unless set.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
