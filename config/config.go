// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads runner settings from an optional YAML file and
// ADVENT_ environment variables using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

type Config struct {
	Inputs   string `mapstructure:"inputs"`   // directory holding day_NAME.txt files
	Database string `mapstructure:"database"` // history database, empty to disable
	AutoEOL  bool   `mapstructure:"auto_eol"`
	StripCR  bool   `mapstructure:"strip_cr"`
	Days     []int  `mapstructure:"days"` // days to run when none are named, empty for all
}

// New returns a Viper with the defaults and environment bindings set.
// The file, if not empty, is read from fs.
func New(fs afero.Fs, file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetDefault("inputs", "contents")
	v.SetDefault("database", "")
	v.SetDefault("auto_eol", true)
	v.SetDefault("strip_cr", false)
	v.SetDefault("days", []int{})

	v.SetEnvPrefix("ADVENT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Inputs == "" {
		return fmt.Errorf("config: inputs: must not be empty")
	}
	for _, day := range cfg.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("config: days: %d: must be between 1 and 25", day)
		}
	}
	return nil
}
