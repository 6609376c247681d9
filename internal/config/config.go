// Package config defines the service configuration: the HTTP listen
// address and the window/period parameters of every analysis component.
// Parameters live here instead of as literals inside the algorithms so
// tests and deployments can exercise alternate windows.
package config

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-analysis/internal/indicator"
	"github.com/rxtech-lab/argo-analysis/internal/smc"
	"github.com/rxtech-lab/argo-analysis/internal/srzone"
	"github.com/rxtech-lab/argo-analysis/pkg/errors"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr" jsonschema:"title=Listen Address,description=host:port the HTTP server binds to" validate:"required"`
}

// Config is the root configuration of the analysis service.
type Config struct {
	Server    ServerConfig     `yaml:"server" json:"server"`
	Indicator indicator.Config `yaml:"indicator" json:"indicator"`
	Structure smc.Config       `yaml:"structure" json:"structure"`
	SRZone    srzone.Config    `yaml:"sr_zone" json:"sr_zone"`
}

// Default returns the configuration the service runs with when no file is
// given: port 8001 (the analysis sidecar's conventional port) and the
// standard analysis windows.
func Default() Config {
	return Config{
		Server:    ServerConfig{Addr: ":8001"},
		Indicator: indicator.DefaultConfig(),
		Structure: smc.DefaultConfig(),
		SRZone:    srzone.DefaultConfig(),
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigRead, err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeConfigParse, err, "failed to parse config file %s", path)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeConfigValidation, "invalid config", err)
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config.
func (c *Config) GenerateSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	schema := reflector.Reflect(c)
	schema.Title = "argo-analysis-config"
	schema.Description = "Configuration schema for the argo-analysis service"

	return schema
}

// GenerateSchemaJSON generates a JSON schema string for the Config.
func (c *Config) GenerateSchemaJSON() (string, error) {
	schemaBytes, err := json.MarshalIndent(c.GenerateSchema(), "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSchemaGeneration, "failed to marshal config schema", err)
	}

	return string(schemaBytes), nil
}
