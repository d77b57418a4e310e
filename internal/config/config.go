package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is built once at startup and treated as read-only afterwards.
type Config struct {
	Port           string
	Debug          bool
	RequestTimeout time.Duration
	AllowedOrigins []string
}

func Default() Config {
	return Config{
		Port:           "8000",
		Debug:          false,
		RequestTimeout: 10 * time.Second,
		AllowedOrigins: []string{
			"https://aniapi.online",
			"http://aniapi.online",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if err := overrideBool("DEBUG", &cfg.Debug); err != nil {
		return Config{}, err
	}
	if err := overrideSeconds("REQUEST_TIMEOUT", &cfg.RequestTimeout); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) == 0 {
			return Config{}, fmt.Errorf("ALLOWED_ORIGINS is set but contains no origins")
		}
		cfg.AllowedOrigins = origins
	}

	return cfg, nil
}

func overrideBool(key string, target *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("parse %s bool: %w", key, err)
	}
	*target = b
	return nil
}

// overrideSeconds reads a float number of seconds.
func overrideSeconds(key string, target *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parse %s seconds: %w", key, err)
	}
	if secs <= 0 {
		return fmt.Errorf("%s must be positive, got %v", key, secs)
	}
	*target = time.Duration(secs * float64(time.Second))
	return nil
}
