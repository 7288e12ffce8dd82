// SPDX-License-Identifier: MIT
// Package: epinet/experiment
//
// plan.go - plan schema, loading and validation.

package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Model names a network generator.
type Model string

const (
	// ModelErdosRenyi samples G(N, P).
	ModelErdosRenyi Model = "erdos-renyi"
	// ModelWattsStrogatz rewires a ring lattice of degree K with probability Beta.
	ModelWattsStrogatz Model = "watts-strogatz"
	// ModelFile loads the adjacency file named by File.
	ModelFile Model = "file"
)

var (
	// ErrUnsupportedFormat is returned for plan files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("experiment: unsupported plan format")

	// ErrInvalidPlan is returned when a plan fails validation or decoding.
	ErrInvalidPlan = errors.New("experiment: invalid plan")
)

// MaxRepetitions bounds Experiment.Repetitions.
const MaxRepetitions = 10000

// Experiment describes one network configuration and how often to sample it.
type Experiment struct {
	Name        string  `toml:"name" yaml:"name" validate:"required,max=64"`
	Model       Model   `toml:"model" yaml:"model" validate:"required,oneof=erdos-renyi watts-strogatz file"`
	N           int     `toml:"n" yaml:"n" validate:"required_unless=Model file,min=0"`
	K           int     `toml:"k" yaml:"k" validate:"min=0"`
	P           float64 `toml:"p" yaml:"p" validate:"min=0,max=1"`
	Beta        float64 `toml:"beta" yaml:"beta" validate:"min=0,max=1"`
	File        string  `toml:"file" yaml:"file" validate:"required_if=Model file"`
	Repetitions int     `toml:"repetitions" yaml:"repetitions" validate:"min=0,max=10000"`
	Seed        int64   `toml:"seed" yaml:"seed"`
}

// Runs returns the effective repetition count: Repetitions, or 1 when unset.
// File experiments are deterministic and always run once.
func (e Experiment) Runs() int {
	if e.Model == ModelFile || e.Repetitions < 1 {
		return 1
	}

	return e.Repetitions
}

// Plan is an ordered list of experiments.
type Plan struct {
	Experiments []Experiment `toml:"experiment" yaml:"experiments" validate:"required,min=1,dive"`

	// dir resolves relative File paths; set by LoadPlan.
	dir string
}

// validate is a singleton validator instance.
var validate = validator.New()

// Validate checks field ranges and cross-field rules, returning the first
// violation wrapped with ErrInvalidPlan.
func (p *Plan) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: plan is nil", ErrInvalidPlan)
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, formatValidationError(err))
	}

	seen := make(map[string]struct{}, len(p.Experiments))
	for i, e := range p.Experiments {
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: experiment #%d: duplicate name %q", ErrInvalidPlan, i, e.Name)
		}
		seen[e.Name] = struct{}{}

		if e.Model == ModelWattsStrogatz && (e.K%2 != 0 || e.K >= e.N) {
			return fmt.Errorf("%w: experiment %q: k=%d must be even and below n=%d",
				ErrInvalidPlan, e.Name, e.K, e.N)
		}
	}

	return nil
}

// formatValidationError returns the first validation error in a user-friendly format.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required", "required_if", "required_unless":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}

// LoadPlan reads a plan, choosing the decoder by extension (.toml, .yaml,
// .yml), rejects unknown keys, and validates the result. Relative File paths
// are resolved against the plan's directory.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: read plan: %w", err)
	}

	p, err := DecodePlan(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("experiment: %s: %w", path, err)
	}
	p.dir = filepath.Dir(path)

	return p, nil
}

// DecodePlan decodes and validates plan data in the format named by ext.
// Relative File paths stay relative to the working directory.
func DecodePlan(data []byte, ext string) (*Plan, error) {
	var p Plan
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidPlan, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// resolve returns path joined with the plan directory when relative.
func (p *Plan) resolve(path string) string {
	if p.dir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(p.dir, path)
}
