package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Pipeline holds the tunable behaviour of the timetable consolidation run.
// Every field has a sensible default so running without a config file works.
type Pipeline struct {
	// RepresentativeDay is the weekday index (0 = Monday) used to decide
	// whether a schedule variant runs. Tuesday is a typical non-holiday day.
	RepresentativeDay int `yaml:"representative_day" validate:"min=0,max=6"`

	// AssumeRunsWhenPatternMissing controls the fail-open behaviour when a
	// schedule carries no (or a truncated) days-run vector.
	AssumeRunsWhenPatternMissing *bool `yaml:"assume_runs_when_pattern_missing"`

	// PathPrecision is the decimal precision of the full-precision
	// intermediate paths, OutputPrecision that of the shipped artifact.
	PathPrecision   int `yaml:"path_precision" validate:"min=1,max=7"`
	OutputPrecision int `yaml:"output_precision" validate:"min=1,max=7"`

	SourceName string `yaml:"source_name"`

	// Date is the ISO date stamped into the output meta block. Defaults to
	// today; fixed in tests for reproducible output.
	Date string `yaml:"date" validate:"omitempty,datetime=2006-01-02"`
}

func Defaults() Pipeline {
	failOpen := true

	return Pipeline{
		RepresentativeDay:            1, // Tuesday
		AssumeRunsWhenPatternMissing: &failOpen,
		PathPrecision:                5,
		OutputPrecision:              4,
		SourceName:                   "Network Rail SCHEDULE",
		Date:                         time.Now().Format("2006-01-02"),
	}
}

// Load reads a pipeline config from a YAML file, filling any unset fields
// with defaults. An empty path returns the defaults untouched.
func Load(path string) (Pipeline, error) {
	pipeline := Defaults()

	if path == "" {
		return pipeline, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline, err
	}

	var loaded Pipeline
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return pipeline, err
	}

	if loaded.RepresentativeDay != 0 || keyPresent(data, "representative_day") {
		pipeline.RepresentativeDay = loaded.RepresentativeDay
	}
	if loaded.AssumeRunsWhenPatternMissing != nil {
		pipeline.AssumeRunsWhenPatternMissing = loaded.AssumeRunsWhenPatternMissing
	}
	if loaded.PathPrecision != 0 {
		pipeline.PathPrecision = loaded.PathPrecision
	}
	if loaded.OutputPrecision != 0 {
		pipeline.OutputPrecision = loaded.OutputPrecision
	}
	if loaded.SourceName != "" {
		pipeline.SourceName = loaded.SourceName
	}
	if loaded.Date != "" {
		pipeline.Date = loaded.Date
	}

	validate := validator.New()
	if err := validate.Struct(pipeline); err != nil {
		return pipeline, err
	}

	return pipeline, nil
}

// FailOpen reports whether a missing days-run vector counts as "runs".
func (p Pipeline) FailOpen() bool {
	return p.AssumeRunsWhenPatternMissing == nil || *p.AssumeRunsWhenPatternMissing
}

// keyPresent distinguishes "representative_day: 0" (Monday) from the key
// being absent, which yaml both decode to the zero value.
func keyPresent(data []byte, key string) bool {
	var raw map[string]any
	if yaml.Unmarshal(data, &raw) != nil {
		return false
	}
	_, present := raw[key]
	return present
}
