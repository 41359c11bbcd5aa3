// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Hero         HeroConfig         `toml:"hero"`
	Testimonials TestimonialsConfig `toml:"testimonials"`
	Nav          NavConfig          `toml:"nav"`
	Content      ContentConfig      `toml:"content"`
	Log          LogConfig          `toml:"log"`
}

// HeroConfig maps hero section settings.
type HeroConfig struct {
	TypingSpeedMs *int    `toml:"typing-speed-ms"`
	FileName      *string `toml:"file-name"`
	Badge         *string `toml:"badge"`
}

// TestimonialsConfig maps testimonial carousel settings.
type TestimonialsConfig struct {
	PageSize *int `toml:"page-size"`
}

// NavConfig maps navigation bar settings.
type NavConfig struct {
	Breakpoint *int `toml:"breakpoint"`
}

// ContentConfig maps the site content source.
type ContentConfig struct {
	Path  *string `toml:"path"`
	Watch *bool   `toml:"watch"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	File  *string `toml:"file"`
	Debug *bool   `toml:"debug"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
