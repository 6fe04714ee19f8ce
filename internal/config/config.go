package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/idilsaglam/schoolmeal/internal/neis"
)

const (
	dirName  = ".schoolmeal"
	fileName = "config.json"
)

// Config holds which school to ask about and how to talk to the API.
type Config struct {
	BaseURL    string        `json:"base_url"`
	SchoolCode string        `json:"school_code"`
	OfficeCode string        `json:"office_code"`
	Theme      string        `json:"theme"`
	Timeout    time.Duration `json:"timeout"`
}

// Default is used for anything the file, env and flags leave unset.
func Default() Config {
	return Config{
		BaseURL:    neis.DefaultBaseURL,
		SchoolCode: "7530079",
		OfficeCode: "J10",
		Theme:      "classic",
		Timeout:    8 * time.Second,
	}
}

// Keys accepted by Set, in display order.
var Keys = []string{"base", "school", "office", "theme", "timeout"}

func dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Path is the location of the config file.
func Path() (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, fileName), nil
}

// Load returns defaults overlaid with the config file and then the
// MEAL_* environment variables. A missing file is not an error.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}
	c.merge(fromEnv())
	return c, nil
}

// LoadFile is Load without the environment.
func LoadFile() (Config, error) {
	c := Default()
	p, err := Path()
	if err != nil {
		return c, err
	}
	b, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, fmt.Errorf("read config: %w", err)
	default:
		var file Config
		if err := json.Unmarshal(b, &file); err != nil {
			return c, fmt.Errorf("parse config: %w", err)
		}
		c.merge(file)
	}
	return c, nil
}

func fromEnv() Config {
	return Config{
		BaseURL:    strings.TrimSpace(os.Getenv("MEAL_API_BASE")),
		SchoolCode: strings.TrimSpace(os.Getenv("MEAL_SCHOOL_CODE")),
		OfficeCode: strings.TrimSpace(os.Getenv("MEAL_OFFICE_CODE")),
		Theme:      strings.TrimSpace(os.Getenv("MEAL_THEME")),
	}
}

// merge copies the non-zero fields of o over c.
func (c *Config) merge(o Config) {
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.SchoolCode != "" {
		c.SchoolCode = o.SchoolCode
	}
	if o.OfficeCode != "" {
		c.OfficeCode = o.OfficeCode
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.Timeout > 0 {
		c.Timeout = o.Timeout
	}
}

// Override applies command-line values; empty strings and zero durations
// leave the current value alone.
func (c *Config) Override(base, school, office, theme string, timeout time.Duration) {
	c.merge(Config{BaseURL: base, SchoolCode: school, OfficeCode: office, Theme: theme, Timeout: timeout})
}

// Set changes one key by name.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s: empty value", key)
	}
	switch key {
	case "base":
		c.BaseURL = value
	case "school":
		c.SchoolCode = value
	case "office":
		c.OfficeCode = value
	case "theme":
		switch strings.ToLower(value) {
		case "classic", "neon", "mono":
			c.Theme = strings.ToLower(value)
		default:
			return fmt.Errorf("theme: want classic, neon or mono, got %q", value)
		}
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("timeout: not a positive duration: %q", value)
		}
		c.Timeout = d
	default:
		return fmt.Errorf("unknown key %q (want one of %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns the value of one key as text.
func (c Config) Get(key string) string {
	switch key {
	case "base":
		return c.BaseURL
	case "school":
		return c.SchoolCode
	case "office":
		return c.OfficeCode
	case "theme":
		return c.Theme
	case "timeout":
		return c.Timeout.String()
	}
	return ""
}

// Save writes c to the config file, owner-only.
func Save(c Config) error {
	d, err := dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	p, _ := Path()
	if err := os.WriteFile(p, b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
