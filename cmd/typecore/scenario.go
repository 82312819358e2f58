package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/typecore/internal/config"
)

// Scenario is the YAML shape a scenario file decodes into. Each step
// names a fixture (built in fixtures.go) to build and unify, since
// arbitrary type-term parsing is outside this engine's scope — the
// surrounding compiler's lexer/parser is what would normally construct
// the terms an engine step unifies.
type Scenario struct {
	Name  string       `yaml:"name"`
	Cache string       `yaml:"cache"`
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig names one fixture to run, and whether it is expected to
// succeed — a scenario author asserting the opposite of what the
// engine actually does is a scenario bug, reported like any other step
// failure.
type StepConfig struct {
	Fixture       string `yaml:"fixture"`
	ExpectSuccess bool   `yaml:"expectSuccess"`
	ExpectRealize string `yaml:"expectRealize,omitempty"`
}

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("typecore: read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("typecore: parse scenario: %w", err)
	}
	if s.Name == "" {
		return Scenario{}, fmt.Errorf("typecore: scenario missing required 'name' field")
	}
	if s.Cache == "" {
		s.Cache = ":memory:"
	}
	return s, nil
}

// EngineConfigFromEnv layers config.LoadEngineConfig over the default,
// matching the teacher's convention of an optional sibling config file
// next to the thing being run.
func EngineConfigFromEnv(path string) config.EngineConfig {
	if path == "" {
		return config.DefaultEngineConfig()
	}
	cfg, err := config.LoadEngineConfig(path)
	if err != nil {
		return config.DefaultEngineConfig()
	}
	return cfg
}
