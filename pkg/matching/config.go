package matching

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

type Config struct {
	Cardinality  string // "strict" or "parity"
	EnforceSlots bool
	MaxTriples   int // Largest family the CLI accepts before refusing to search
}

func DefaultConfig() Config {
	return Config{
		Cardinality:  StrictCardinality.String(),
		EnforceSlots: DefaultPolicy.EnforceSlots,
		MaxTriples:   24,
	}
}

// ConfigFromJson reads a config file on top of DefaultConfig, keys missing from the file keep their default value
func ConfigFromJson(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	config := DefaultConfig()
	if err := mapstructure.Decode(configJson, &config); err != nil {
		return Config{}, fmt.Errorf("invalid config file: %w", err)
	}
	if config.MaxTriples <= 0 || config.MaxTriples > MaxFamilySize {
		return Config{}, fmt.Errorf("maxTriples must be between 1 and %d: %v", MaxFamilySize, config.MaxTriples)
	}
	return config, nil
}

func (config Config) Policy() (ValidationPolicy, error) {
	cardinality, err := ParseCardinalityCheck(config.Cardinality)
	if err != nil {
		return ValidationPolicy{}, err
	}
	return ValidationPolicy{
		Cardinality:  cardinality,
		EnforceSlots: config.EnforceSlots,
	}, nil
}
