// Package pcbgen implements the Pipeline Driver: the state machine that
// sequences Netlist -> Placement -> Routing -> Zones -> Validation,
// manages bounded refinement, and surfaces the final board and report.
// Grounded on the teacher's pkg/dungeon Generator/Config orchestration
// shape (stage sequencing, deterministic seeding, Config.Validate/Hash).
package pcbgen

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/placement"
	"github.com/dshills/pcbgen/pkg/routing"
	"github.com/dshills/pcbgen/pkg/validation"
	"github.com/dshills/pcbgen/pkg/zones"
)

// Config is the hierarchical configuration for a full pipeline run,
// covering every inbound option named in spec.md §6.
type Config struct {
	Preset         string             `yaml:"preset" json:"preset"`
	CustomWidthMM  float64            `yaml:"custom_width_mm,omitempty" json:"custom_width_mm,omitempty"`
	CustomHeightMM float64            `yaml:"custom_height_mm,omitempty" json:"custom_height_mm,omitempty"`
	CustomLayers   int                `yaml:"custom_layers,omitempty" json:"custom_layers,omitempty"`
	DesignRules    board.DesignRules  `yaml:"design_rules" json:"design_rules"`
	Placement      placement.Config   `yaml:"placement" json:"placement"`
	Routing        routing.Config     `yaml:"routing" json:"routing"`
	Zones          zones.Config       `yaml:"zones" json:"zones"`
	Validation     validation.Config  `yaml:"validation" json:"validation"`
	RefinementBudget int              `yaml:"refinement_budget" json:"refinement_budget"`
}

// DefaultConfig returns the pipeline's documented defaults: eurorack
// preset, every sub-stage's own DefaultConfig, and a refinement budget
// of 5 iterations.
func DefaultConfig() *Config {
	return &Config{
		Preset:           "eurorack",
		DesignRules:      board.DefaultDesignRules(),
		Placement:        *placement.DefaultConfig(),
		Routing:          *routing.DefaultConfig(),
		Zones:            *zones.DefaultConfig(),
		Validation:       *validation.DefaultConfig(),
		RefinementBudget: 5,
	}
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration starting from the
// documented defaults, so a partial file only overrides what it sets.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the pipeline-level fields and the placement sub-config.
// The routing, zones and validation sub-configs have no Validate method
// and are not checked.
func (c *Config) Validate() error {
	if err := c.Placement.Validate(); err != nil {
		return err
	}
	switch c.Preset {
	case "eurorack", "pedal", "desktop", "rack":
	case "custom":
		if c.CustomWidthMM <= 0 || c.CustomHeightMM <= 0 {
			return errors.New("custom preset requires custom_width_mm and custom_height_mm")
		}
	default:
		return fmt.Errorf("unknown preset %q", c.Preset)
	}
	if c.RefinementBudget < 0 {
		return fmt.Errorf("refinement_budget must be >= 0, got %d", c.RefinementBudget)
	}
	return nil
}

// ToYAML serializes the config back to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Hash computes a deterministic digest of the configuration, used to
// tag a run for correlation with its ValidationReport.
func (c *Config) Hash() []byte {
	data, err := c.ToYAML()
	if err != nil {
		h := sha256.Sum256([]byte(c.Preset))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
