// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads the default `.env` file from the working directory, once per
//     process, before the first parse (missing files are fine).
//   - Parses the environment into any Go struct using `env` field tags.
//   - Exposes MustLoad for configuration the process cannot start without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type ServerConfig struct {
//	    Port    int    `env:"PORT" envDefault:"8080"`
//	    BaseURL string `env:"SITE_BASE_URL,required"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Load returns an error instead of panicking for callers that prefer to
// handle misconfiguration themselves:
//
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
