package equivkit

import (
	"bytes"
	"errors"
	"math"

	"github.com/joeshaw/envdecode"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"

	"go.llib.dev/capkit/pkg/errorkit"
)

const ErrFloatPolicy errorkit.Error = "ErrFloatPolicy"

// FloatPolicy tells how floating point values are compared.
// The zero value compares exactly, and treats NaN as unequal to everything, itself included.
//
// A policy can be loaded from YAML or TOML:
//
//	abs_tolerance: 1e-9
//	rel_tolerance: 1e-6
//	nan_equal: true
//
// or from the CAPKIT_FLOAT_ABS_TOLERANCE, CAPKIT_FLOAT_REL_TOLERANCE and CAPKIT_FLOAT_NAN_EQUAL variables.
type FloatPolicy struct {
	AbsTolerance float64 `yaml:"abs_tolerance" toml:"abs_tolerance" env:"CAPKIT_FLOAT_ABS_TOLERANCE"`
	RelTolerance float64 `yaml:"rel_tolerance" toml:"rel_tolerance" env:"CAPKIT_FLOAT_REL_TOLERANCE"`
	NaNEqual     bool    `yaml:"nan_equal" toml:"nan_equal" env:"CAPKIT_FLOAT_NAN_EQUAL"`
}

func (p FloatPolicy) Validate() error {
	if p.AbsTolerance < 0 || math.IsNaN(p.AbsTolerance) {
		return ErrFloatPolicy.F("absolute tolerance must be a non-negative number, got %v", p.AbsTolerance)
	}
	if p.RelTolerance < 0 || math.IsNaN(p.RelTolerance) {
		return ErrFloatPolicy.F("relative tolerance must be a non-negative number, got %v", p.RelTolerance)
	}
	return nil
}

// FloatsEqual compares a and b under policy.
// Two values are equal when they are identical,
// or when their distance is within the absolute tolerance,
// or within the relative tolerance of the larger magnitude.
func FloatsEqual[F constraints.Float](policy FloatPolicy, a, b F) bool {
	x, y := float64(a), float64(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return policy.NaNEqual && math.IsNaN(x) && math.IsNaN(y)
	}
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	if diff <= policy.AbsTolerance {
		return true
	}
	return diff <= policy.RelTolerance*math.Max(math.Abs(x), math.Abs(y))
}

// ParseFloatPolicyYAML decodes a policy document in YAML.
func ParseFloatPolicyYAML(data []byte) (FloatPolicy, error) {
	var p FloatPolicy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return FloatPolicy{}, ErrFloatPolicy.Wrap(err)
	}
	return p, p.Validate()
}

// ParseFloatPolicyTOML decodes a policy document in TOML.
func ParseFloatPolicyTOML(data []byte) (FloatPolicy, error) {
	var p FloatPolicy
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return FloatPolicy{}, ErrFloatPolicy.Wrap(err)
	}
	return p, p.Validate()
}

// FloatPolicyFromEnv reads the policy from the environment.
// Variables that are not set keep their zero value.
func FloatPolicyFromEnv() (FloatPolicy, error) {
	var p FloatPolicy
	if err := envdecode.Decode(&p); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return FloatPolicy{}, ErrFloatPolicy.Wrap(err)
	}
	return p, p.Validate()
}
