// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if present.
//     Additional files can be loaded explicitly with LoadEnv.
//   - Load parses the environment into any struct using `env` and `envDefault`
//     field tags, optionally under a key prefix (WithPrefix).
//   - Each configuration type and prefix is parsed once and cached for the
//     lifetime of the process. ResetCache clears the cache in tests.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/primkit/pkg/config"
//	    "github.com/dmitrymomot/primkit/pkg/numeric"
//	)
//
//	var cfg numeric.Config
//	if err := config.Load(&cfg, config.WithPrefix("PRIMKIT_")); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//	total := numeric.Sum(values, cfg.SumOptions()...)
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with errors.Is:
//
//   - ErrParsingConfig  – failed to parse env vars into the struct.
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read.
//   - ErrConfigNotLoaded – the value could not be read back from the cache.
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
//
// A failed parse is not cached, so Load can be retried after fixing the
// environment.
package config
