// Package config loads a pipeline definition from YAML: an ordered list of
// verb specs, each resolved against a verb.Registry into a constructed
// verb.Verb. Shape mirrors the teacher's internal/config.LoadConfig:
// read file, parse, validate. No defaults are applied.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"tabverb/pkg/verb"
)

// VerbSpec is one entry in a pipeline's verb list.
type VerbSpec struct {
	Type string   `yaml:"type"`
	Args []string `yaml:"args"`
}

// PipelineConfig is the top-level YAML document: an ordered list of verb
// specs applied in file order.
type PipelineConfig struct {
	Verbs []VerbSpec `yaml:"verbs"`
}

// Load reads and parses a pipeline YAML file. An empty path is a caller
// error, not a silent default, since there is no sensible default pipeline.
func Load(path string) (*PipelineConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("config: no pipeline file specified")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read pipeline file %s: %w", path, err)
	}

	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse pipeline file %s: %w", path, err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate rejects an empty pipeline; everything else is validated by
// Build, which has access to the registry needed to parse verb args.
func Validate(cfg *PipelineConfig) error {
	if len(cfg.Verbs) == 0 {
		return fmt.Errorf("pipeline has no verbs")
	}
	return nil
}

// Build resolves every verb spec in cfg against reg, in order, surfacing a
// parse failure with the file/verb-index context the spec's §7 item 1
// ("CLI/parse errors... driver aborts the pipeline build") calls for.
func Build(argv0 string, cfg *PipelineConfig, reg *verb.Registry, stderr io.Writer) ([]verb.Verb, error) {
	verbs := make([]verb.Verb, 0, len(cfg.Verbs))
	for i, spec := range cfg.Verbs {
		v, err := reg.Build(argv0, spec.Type, spec.Args, stderr)
		if err != nil {
			return nil, fmt.Errorf("config: verb %d (%s): %w", i, spec.Type, err)
		}
		verbs = append(verbs, v)
	}
	return verbs, nil
}
