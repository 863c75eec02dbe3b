package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type and prefix.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

// Option configures a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix string
}

// WithPrefix prepends prefix to every env key of the struct,
// e.g. WithPrefix("PRIMKIT_") reads SUM_IGNORE_NAN from PRIMKIT_SUM_IGNORE_NAN.
// Values loaded with different prefixes are cached separately.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.prefix = prefix
	}
}

// Load parses environment variables into v based on its `env` field tags.
//
// The default .env file is loaded once before the first parse; a missing file
// is not an error. Each configuration type (and prefix) is parsed only once;
// later calls are served from the cache.
//
// Example:
//
//	var cfg numeric.Config
//	if err := config.Load(&cfg, config.WithPrefix("PRIMKIT_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}
	key := cacheKey[T](o.prefix)

	if cached(key, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if parseErr := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// Allow a retry once the environment is fixed
			globalCache.mu.Lock()
			delete(globalCache.onces, key)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	// Concurrent callers that lost the race read the winner's value
	if cached(key, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops all cached configuration values. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// cached copies the cached value for key into v.
func cached[T any](key string, v *T) bool {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()

	value, ok := globalCache.values[key]
	if !ok {
		return false
	}
	*v = value.(T)
	return true
}

// cacheKey returns a string identifier for the generic type T and prefix.
func cacheKey[T any](prefix string) string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String() + "|" + prefix
}
