// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files, with
// github.com/caarlos0/env/v11, which parses the environment into structs
// annotated with `env` tags. Each configuration type is parsed once and
// cached for the life of the process.
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Call LoadEnv before the first Load to read custom .env files; otherwise
// the default .env in the working directory is tried and silently skipped
// when absent. Reset clears the cache, which tests use between cases.
package config
