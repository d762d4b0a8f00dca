package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioConfig describes one bench run: which fixture pool to load,
// what constraints to apply, and which strategy to exercise. This is
// harness configuration, not engine configuration — the engine itself
// takes Constraints and *Options values directly, never a config file.
type ScenarioConfig struct {
	Name       string         `yaml:"name"`
	Pool       string         `yaml:"pool"`
	Strategy   string         `yaml:"strategy"` // "enumerate", "heuristic", or "both"
	Target     []int          `yaml:"target"`
	Exclude    []int          `yaml:"exclude"`
	MinAttrSum map[int]int    `yaml:"minAttrSum"`
	Enumerate  *enumerateTune `yaml:"enumerate"`
	Heuristic  *heuristicTune `yaml:"heuristic"`
}

type enumerateTune struct {
	K       int `yaml:"k"`
	Workers int `yaml:"workers"`
}

type heuristicTune struct {
	K                     int `yaml:"k"`
	AttemptMultiplier     int `yaml:"attemptMultiplier"`
	LocalSearchIterations int `yaml:"localSearchIterations"`
	Workers               int `yaml:"workers"`
}

// loadScenario parses a ScenarioConfig from YAML with strict field
// checking, matching the teacher pack's own defaults.yaml loader
// (inference-sim's cmd/default_config.go): typos in a scenario file
// should fail loudly rather than silently no-op.
func loadScenario(path string) (ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return ScenarioConfig{}, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "both"
	}
	return cfg, nil
}

func toIDSet(ids []int) map[int]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
