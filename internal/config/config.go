// Package config loads batch jobs: named lists of state points read from a
// YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gosteam/internal/steam"
)

// Job is a batch of state points.
type Job struct {
	Name   string      `yaml:"name" json:"name"`
	Points []PointSpec `yaml:"points" json:"points"`
}

// PointSpec names one state by a property pair. When ToP is set the point
// is also expanded to that pressure with the given isentropic efficiency
// (1 when omitted).
type PointSpec struct {
	Name       string  `yaml:"name" json:"name"`
	Pair       string  `yaml:"pair" json:"pair"`
	A          float64 `yaml:"a" json:"a"`
	B          float64 `yaml:"b" json:"b"`
	ToP        float64 `yaml:"to_p,omitempty" json:"to_p,omitempty"`
	Efficiency float64 `yaml:"efficiency,omitempty" json:"efficiency,omitempty"`
}

// Load reads a job from path. The format follows the extension: .json is
// JSON, anything else is YAML.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job Job
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &job)
	default:
		err = yaml.Unmarshal(data, &job)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Validate checks every point and fills in defaults.
func (j *Job) Validate() error {
	if len(j.Points) == 0 {
		return &ValidationError{"job must have at least one point"}
	}
	for i := range j.Points {
		p := &j.Points[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("point %d", i+1)
		}
		if _, err := steam.ParsePair(p.Pair); err != nil {
			return &ValidationError{fmt.Sprintf("%s: %v", p.Name, err)}
		}
		if !finite(p.A) || !finite(p.B) {
			return &ValidationError{fmt.Sprintf("%s: property values must be finite", p.Name)}
		}
		if p.ToP < 0 || !finite(p.ToP) {
			return &ValidationError{fmt.Sprintf("%s: outlet pressure must be a non-negative number", p.Name)}
		}
		if p.ToP > 0 && p.Efficiency == 0 {
			p.Efficiency = 1
		}
		if !finite(p.Efficiency) || p.Efficiency < 0 || p.Efficiency > 1 {
			return &ValidationError{fmt.Sprintf("%s: efficiency must be between 0 and 1", p.Name)}
		}
	}
	return nil
}

// State evaluates the point's inlet state.
func (p PointSpec) State() (steam.State, error) {
	return steam.New(p.Pair, p.A, p.B)
}

// Expands reports whether the point carries an expansion.
func (p PointSpec) Expands() bool {
	return p.ToP > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidationError represents a job validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
