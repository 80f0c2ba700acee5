// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"unicode/utf8"

	"fullname-parser/internal/personname"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Defaults `yaml:"defaults"`

	// Dictionary overrides layered over the built-in tables
	Dictionary Dictionary `yaml:"dictionary"`

	// Profiles for different parsing scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Defaults holds the settings applied when no profile or flag overrides them
type Defaults struct {
	Format    string `yaml:"format" env:"FULLNAME_PARSER_FORMAT"`
	Delimiter string `yaml:"delimiter" env:"FULLNAME_PARSER_DELIMITER"`
	OutputDir string `yaml:"output_dir" env:"FULLNAME_PARSER_OUTPUT_DIR"`
	Workers   int    `yaml:"workers" env:"FULLNAME_PARSER_WORKERS"`
	Verbose   bool   `yaml:"verbose" env:"FULLNAME_PARSER_VERBOSE"`
	Debug     bool   `yaml:"debug" env:"FULLNAME_PARSER_DEBUG"`
	NoColor   bool   `yaml:"no_color" env:"FULLNAME_PARSER_NO_COLOR"`
}

// Dictionary selects the lookup tables. File is loaded first; any inline
// table that is non-empty then replaces the corresponding table wholesale.
type Dictionary struct {
	File                 string                   `yaml:"file" env:"FULLNAME_PARSER_DICTIONARY"`
	Prefixes             []personname.PrefixGroup `yaml:"prefixes"`
	LineSuffixes         []string                 `yaml:"line_suffixes"`
	ProfessionalSuffixes []string                 `yaml:"professional_suffixes"`
	CompoundMarkers      []string                 `yaml:"compound_markers"`
}

// Profile represents a named set of settings selected with --profile
type Profile struct {
	Format      string `yaml:"format"`
	Delimiter   string `yaml:"delimiter"`
	OutputDir   string `yaml:"output_dir"`
	Workers     int    `yaml:"workers"`
	Verbose     bool   `yaml:"verbose"`
	Debug       bool   `yaml:"debug"`
	NoColor     bool   `yaml:"no_color"`
	Description string `yaml:"description"`

	// Dictionary file specific to this profile
	DictionaryFile string `yaml:"dictionary_file"`
}

// supportedFormats mirrors the formatter registry; config cannot import it
// without a cycle through the CLI.
var supportedFormats = []string{"csv", "json", "text", "xlsx", "yaml"}

// defaultConfig returns the configuration used when no file is present
func defaultConfig() *Config {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	config.Defaults.Format = "csv"
	config.Defaults.Delimiter = ","
	config.Defaults.OutputDir = "."
	config.Defaults.Workers = 4

	// Spreadsheet hand-off without color codes
	config.Profiles["export"] = Profile{
		Format:      "xlsx",
		NoColor:     true,
		Description: "Write one spreadsheet per input file",
	}
	// Human-readable table for terminals
	config.Profiles["review"] = Profile{
		Format:      "text",
		Verbose:     true,
		Description: "Print an aligned table and a per-file summary",
	}

	return config
}

// LoadConfig loads configuration from the specified file path.
// Environment variables are applied last and win over the file.
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath != "" {
		cleanPath := filepath.Clean(configPath)
		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
		if config.Profiles == nil {
			config.Profiles = make(map[string]Profile)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	for _, name := range []string{"fullname-parser.yaml", "fullname-parser.yml", "config.yaml"} {
		if fileExists(name) {
			return name
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(home, ".fullname-parser", name)
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the available profile names in sorted order
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter
func (d Defaults) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// BuildDictionary resolves the dictionary section into parser tables.
// dictionaryFile, when non-empty, takes precedence over Dictionary.File.
func (c *Config) BuildDictionary(dictionaryFile string) (personname.Dictionary, error) {
	path := dictionaryFile
	if path == "" {
		path = c.Dictionary.File
	}

	dict := personname.DefaultDictionary()
	if path != "" {
		loaded, err := personname.LoadDictionaryFile(path)
		if err != nil {
			return personname.Dictionary{}, err
		}
		dict = loaded
	}

	dict = dict.Merge(personname.Dictionary{
		Prefixes:             c.Dictionary.Prefixes,
		LineSuffixes:         slices.Clone(c.Dictionary.LineSuffixes),
		ProfessionalSuffixes: slices.Clone(c.Dictionary.ProfessionalSuffixes),
		CompoundMarkers:      slices.Clone(c.Dictionary.CompoundMarkers),
	})
	if err := dict.Validate(); err != nil {
		return personname.Dictionary{}, err
	}
	return dict, nil
}

// ValidateConfig checks formats, delimiters and worker counts in defaults and profiles
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	var errs []error
	if err := ValidateSettings("defaults", config.Defaults.Format, config.Defaults.Delimiter, config.Defaults.Workers); err != nil {
		errs = append(errs, err)
	}
	for _, name := range config.ListProfiles() {
		profile := config.Profiles[name]
		if err := ValidateSettings("profile '"+name+"'", profile.Format, profile.Delimiter, profile.Workers); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateSettings checks one scope of format, delimiter and worker settings
func ValidateSettings(scope, format, delimiter string, workers int) error {
	if format != "" && !slices.Contains(supportedFormats, format) {
		return fmt.Errorf("%s: unsupported format %q", scope, format)
	}
	if delimiter != "" && utf8.RuneCountInString(delimiter) != 1 {
		return fmt.Errorf("%s: delimiter must be a single character, got %q", scope, delimiter)
	}
	if delimiter == "\"" || delimiter == "\n" || delimiter == "\r" {
		return fmt.Errorf("%s: delimiter %q cannot be used", scope, delimiter)
	}
	if workers < 0 {
		return fmt.Errorf("%s: workers cannot be negative", scope)
	}
	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Callers should not crash on a missing or bad config file
		return defaultConfig()
	}
	return cfg
}
