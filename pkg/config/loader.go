package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	mu        sync.Mutex
	cache     = make(map[reflect.Type]any)
	envLoaded bool
)

// LoadEnv reads the given .env files into the process environment.
// Existing variables are not overridden. Without paths it reads ./.env.
func LoadEnv(paths ...string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	envLoaded = true
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Load parses the environment into v. The first successful parse of each type
// is cached and returned on later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	mu.Lock()
	defer mu.Unlock()

	if !envLoaded {
		// The default .env file is optional.
		_ = godotenv.Load()
		envLoaded = true
	}

	key := reflect.TypeFor[T]()
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics on failure.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: load %T: %v", *v, err))
	}
}

// Reset drops every cached configuration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = make(map[reflect.Type]any)
	envLoaded = false
}
