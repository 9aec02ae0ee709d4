package main

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/go-leo/themevalue/valueobject"
)

// Config is read from the environment.
type Config struct {
	Timezone string `env:"THEMEVALUE_TIMEZONE" env-default:"Local" env-description:"time zone timestamps are read in"`
	Variant  string `env:"THEMEVALUE_VARIANT" env-default:"default" env-description:"variant of dates built without one"`
	Language string `env:"THEMEVALUE_LANGUAGE" env-description:"language code set on files without one"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) dateOptions() ([]valueobject.DateOption, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid THEMEVALUE_TIMEZONE: %w", err)
	}
	return []valueobject.DateOption{
		valueobject.WithLocation(loc),
		valueobject.WithDefaultVariant(c.Variant),
	}, nil
}
