// Package tuning loads gameplay tuning values from YAML.
//
// A compiled-in default profile ships with the binary; deployments may
// override it with a tuning file on disk. Values are read once at startup
// and treated as immutable afterwards.
package tuning

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Tuning carries all numeric gameplay parameters.
type Tuning struct {
	Movement    Movement    `yaml:"movement"`
	Mutation    Mutation    `yaml:"mutation"`
	Battlefield Battlefield `yaml:"battlefield"`
}

// Movement parameterizes the AP cost of battlefield movement.
type Movement struct {
	// APPerUnit is the AP cost of moving one coordinate unit at reference mass.
	APPerUnit float64 `yaml:"ap_per_unit"`
	// MassReference is the actor mass at which APPerUnit applies unscaled.
	MassReference float64 `yaml:"mass_reference"`
	// DefaultMass substitutes for actors whose mass cannot be computed.
	DefaultMass float64 `yaml:"default_mass"`
	// EnergyPerAP converts spent AP into reported energy drain.
	EnergyPerAP float64 `yaml:"energy_per_ap"`
	// MaxCommandDistance caps the distance argument accepted from input.
	MaxCommandDistance int `yaml:"max_command_distance"`
	// MaxCommandAP caps the AP argument accepted from input.
	MaxCommandAP int `yaml:"max_command_ap"`
}

// Mutation parameterizes the tiered stat upgrade cost model.
type Mutation struct {
	// Base is the exponent base of the per-level cost curve.
	Base int `yaml:"base"`
	// LevelsPerTier is the width of one pricing tier in stat levels.
	LevelsPerTier int `yaml:"levels_per_tier"`
	// RecoveryFee is the flat charge for restoring a stat from below baseline.
	RecoveryFee int `yaml:"recovery_fee"`
}

// Battlefield parameterizes combat arena construction.
type Battlefield struct {
	// Length is the default extent of a one-dimensional battlefield.
	Length int `yaml:"length"`
}

var (
	defaultOnce sync.Once
	defaultVal  Tuning
)

// Default returns the compiled-in tuning profile.
func Default() Tuning {
	defaultOnce.Do(func() {
		if err := yaml.Unmarshal(defaultYAML, &defaultVal); err != nil {
			panic(fmt.Sprintf("embedded tuning: %v", err))
		}
		if err := defaultVal.Validate(); err != nil {
			panic(fmt.Sprintf("embedded tuning: %v", err))
		}
	})
	return defaultVal
}

// Load reads a tuning file from disk. Missing fields keep their default
// values, so partial overrides are valid files.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// Validate reports the first out-of-range parameter.
func (t Tuning) Validate() error {
	switch {
	case t.Movement.APPerUnit <= 0:
		return fmt.Errorf("movement.ap_per_unit must be positive, got %v", t.Movement.APPerUnit)
	case t.Movement.MassReference <= 0:
		return fmt.Errorf("movement.mass_reference must be positive, got %v", t.Movement.MassReference)
	case t.Movement.DefaultMass <= 0:
		return fmt.Errorf("movement.default_mass must be positive, got %v", t.Movement.DefaultMass)
	case t.Movement.EnergyPerAP < 0:
		return fmt.Errorf("movement.energy_per_ap must be non-negative, got %v", t.Movement.EnergyPerAP)
	case t.Movement.MaxCommandDistance <= 0:
		return fmt.Errorf("movement.max_command_distance must be positive, got %d", t.Movement.MaxCommandDistance)
	case t.Movement.MaxCommandAP <= 0:
		return fmt.Errorf("movement.max_command_ap must be positive, got %d", t.Movement.MaxCommandAP)
	case t.Mutation.Base < 2:
		return fmt.Errorf("mutation.base must be at least 2, got %d", t.Mutation.Base)
	case t.Mutation.LevelsPerTier <= 0:
		return fmt.Errorf("mutation.levels_per_tier must be positive, got %d", t.Mutation.LevelsPerTier)
	case t.Mutation.RecoveryFee < 0:
		return fmt.Errorf("mutation.recovery_fee must be non-negative, got %d", t.Mutation.RecoveryFee)
	case t.Battlefield.Length <= 0:
		return fmt.Errorf("battlefield.length must be positive, got %d", t.Battlefield.Length)
	}
	return nil
}
