// Package config resolves runtime settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/citymst/prim_kruskal"
)

// ErrInvalid indicates an environment value that cannot be parsed.
var ErrInvalid = errors.New("config: invalid value")

// Environment keys.
const (
	KeyPort     = "PORT"
	KeySeed     = "CITYMST_SEED"
	KeyMethod   = "CITYMST_METHOD"
	KeyDefaultK = "CITYMST_DEFAULT_K"
)

// Config is the resolved service configuration.
type Config struct {
	Port     string
	Seed     int64 // 0 = wall clock
	Method   string
	DefaultK int
}

// Load reads files (default ".env") into the process environment without
// overriding variables that are already set, then resolves Config.
// A missing .env is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return FromEnv()
}

// FromEnv resolves Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port: Get(KeyPort, "8080"),
	}

	seed, err := strconv.ParseInt(Get(KeySeed, "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeySeed, ErrInvalid)
	}
	cfg.Seed = seed

	method, err := prim_kruskal.ParseMethod(os.Getenv(KeyMethod))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w: %w", KeyMethod, ErrInvalid, err)
	}
	cfg.Method = method

	k, err := strconv.Atoi(Get(KeyDefaultK, "5"))
	if err != nil || k < 2 {
		return Config{}, fmt.Errorf("%s must be an integer ≥ 2: %w", KeyDefaultK, ErrInvalid)
	}
	cfg.DefaultK = k

	return cfg, nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
