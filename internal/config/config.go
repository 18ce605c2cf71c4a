// Package config loads and saves the gqlpojo project file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSchema   = "src/main/resources/schema.graphqls"
	DefaultOutput   = "src/main/java"
	DefaultLanguage = "java"
	DefaultParser   = "graphql-go-tools"
	DefaultDebounce = 200 * time.Millisecond
)

// FileNames are the project file names searched for, in order
var FileNames = []string{"gqlpojo.yaml", "gqlpojo.yml", "gqlpojo.json"}

// ErrConfigNotFound is returned when no project file exists in a directory or its parents
var ErrConfigNotFound = errors.New("no gqlpojo config found")

var validate = validator.New()

// Config represents the gqlpojo project file
type Config struct {
	Schema     string            `yaml:"schema" json:"schema"`
	Output     string            `yaml:"output" json:"output"`
	Package    string            `yaml:"package" json:"package" validate:"required"`
	Language   string            `yaml:"language" json:"language" validate:"oneof=java go"`
	Parser     string            `yaml:"parser" json:"parser" validate:"oneof=graphql-go-tools gqlparser"`
	Scalars    map[string]string `yaml:"scalars,omitempty" json:"scalars,omitempty" validate:"dive,keys,required,endkeys,required"`
	Workers    int               `yaml:"workers,omitempty" json:"workers,omitempty" validate:"min=0"`
	Interfaces bool              `yaml:"interfaces,omitempty" json:"interfaces,omitempty"`
	Watch      WatchConfig       `yaml:"watch,omitempty" json:"watch,omitempty"`
}

// WatchConfig contains watch mode configuration
type WatchConfig struct {
	// Debounce is a Go duration string such as "250ms"
	Debounce string `yaml:"debounce,omitempty" json:"debounce,omitempty"`
}

// Default returns a config with every optional field set
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Schema == "" {
		c.Schema = DefaultSchema
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Parser == "" {
		c.Parser = DefaultParser
	}
}

// DebounceDuration parses Watch.Debounce, falling back to DefaultDebounce
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return DefaultDebounce, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	return d, nil
}

// Validate checks required fields and allowed values
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		_, err = c.DebounceDuration()
		return err
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, formatValidationError(ve))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

func formatValidationError(ve validator.FieldError) string {
	field := strings.ToLower(ve.Field())
	switch ve.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, ve.Param(), ve.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, ve.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, ve.Tag())
	}
}

// Resolve returns a copy whose relative schema and output paths are joined to dir
func (c *Config) Resolve(dir string) *Config {
	out := *c
	if out.Schema != "" && !filepath.IsAbs(out.Schema) {
		out.Schema = filepath.Join(dir, out.Schema)
	}
	if out.Output != "" && !filepath.IsAbs(out.Output) {
		out.Output = filepath.Join(dir, out.Output)
	}
	return &out
}

// LoadConfig loads the project file from the current directory or a parent directory
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads a project file, decoding JSON or YAML by extension
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if isJSON(path) {
		err = json.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	config.applyDefaults()
	return &config, nil
}

// Marshal encodes the config as JSON or YAML, chosen by the extension of path
func (c *Config) Marshal(path string) ([]byte, error) {
	if isJSON(path) {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		return append(data, '\n'), nil
	}

	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sb.String()), nil
}

// Save writes the config to path as JSON or YAML by extension
func (c *Config) Save(path string) error {
	data, err := c.Marshal(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadConfigFromDir searches for a project file in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		for _, name := range FileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				config, err := LoadConfigFromPath(configPath)
				if err != nil {
					return nil, "", err
				}
				return config, dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrConfigNotFound, startDir)
}
