package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ServerConfig is the top-level configuration of the impose binary.
type ServerConfig struct {
	// AdminPort is the port of the configuration API.
	AdminPort int `koanf:"adminPort" validate:"gte=1,lte=65535"`

	// BindHost is the interface imposter listeners bind to. Empty means
	// all interfaces.
	BindHost string `koanf:"bindHost"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"logLevel" validate:"omitempty,oneof=debug info warn error"`

	// LogFormat is one of text, json.
	LogFormat string `koanf:"logFormat" validate:"omitempty,oneof=text json"`

	// Collections are imposter collection files loaded at startup.
	Collections []string `koanf:"collections" validate:"omitempty,dive,required"`
}

// DefaultServerConfig returns the configuration used when no file is
// given.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		AdminPort: 2525,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadServerConfig reads and validates a server configuration file.
// Fields absent from the file keep their defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration's struct constraints.
func (c *ServerConfig) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
