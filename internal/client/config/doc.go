// Package config loads runtime configuration for the launcher auth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. MCAUTH_* environment variables.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
//	{
//	  "auth_url": "https://authserver.mojang.com/authenticate",
//	  "profile_url": "https://api.minecraftservices.com/minecraft/profile",
//	  "user_agent": "MCDocker",
//	  "request_timeout": "15s",
//	  "game_dir": "/home/steve/.minecraft",
//	  "log_format": "text",
//	  "log_level": "warn"
//	}
//
// # Environment
//
//	MCAUTH_AUTH_URL, MCAUTH_PROFILE_URL, MCAUTH_USER_AGENT,
//	MCAUTH_REQUEST_TIMEOUT (Go duration), MCAUTH_GAME_DIR,
//	MCAUTH_LOG_FORMAT, MCAUTH_LOG_LEVEL
package config
