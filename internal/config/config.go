package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bond-yield/internal/model"
	"bond-yield/internal/solver"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load bond terms from a separate YAML (e.g. examples/bonds/*.yaml).
	// If both BondFile and Bond are provided, Bond overrides BondFile.
	BondFile string       `yaml:"bond_file"`
	Bond     BondConfig   `yaml:"bond"`
	Solver   SolverConfig `yaml:"solver"`
}

type BondConfig struct {
	Name            string  `yaml:"name"`
	FaceValue       float64 `yaml:"face_value"`
	CouponRate      float64 `yaml:"coupon_rate"`
	PaymentsPerYear int     `yaml:"payments_per_year"`
	YearsToMaturity float64 `yaml:"years_to_maturity"`
	YearsToCall     float64 `yaml:"years_to_call"`
	CallPrice       float64 `yaml:"call_price"`
	// CurrentPrice is the observed market price the CLI and ranking solve
	// against. API requests carry their own price instead.
	CurrentPrice float64 `yaml:"current_price"`
}

type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	InitialGuess  float64 `yaml:"initial_guess"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If bond_file is set, load it and merge in any explicit overrides from c.Bond.
	if c.BondFile != "" {
		bondPath := c.BondFile
		if !filepath.IsAbs(bondPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), bondPath)
			if _, err := os.Stat(cand); err == nil {
				bondPath = cand
			}
		}
		loaded, err := LoadBondFile(bondPath)
		if err != nil {
			return nil, err
		}
		c.Bond = MergeBond(loaded, c.Bond)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate bond terms by constructing a model.BondTerms.
	if _, err := model.NewBond(c.Bond.ToModelTerms()); err != nil {
		return fmt.Errorf("bond config invalid: %w", err)
	}
	if c.Solver.Tolerance < 0 {
		return errors.New("solver.tolerance must be >= 0")
	}
	if c.Solver.MaxIterations < 0 {
		return errors.New("solver.max_iterations must be >= 0")
	}
	return nil
}

func (b BondConfig) ToModelTerms() model.BondTerms {
	return model.BondTerms{
		Name:            b.Name,
		FaceValue:       b.FaceValue,
		CouponRate:      b.CouponRate,
		PaymentsPerYear: b.PaymentsPerYear,
		YearsToMaturity: b.YearsToMaturity,
		YearsToCall:     b.YearsToCall,
		CallPrice:       b.CallPrice,
	}
}

// ToSolverParams converts the tuning section, leaving zero values for the
// solver's own defaults to fill in.
func (s SolverConfig) ToSolverParams() solver.Params {
	return solver.Params{
		Tolerance:     s.Tolerance,
		MaxIterations: s.MaxIterations,
		InitialGuess:  s.InitialGuess,
	}
}

type bondFileWrapper struct {
	Bond BondConfig `yaml:"bond"`
}

// LoadBondFile reads a single bond preset (a YAML file with a `bond:` wrapper).
func LoadBondFile(path string) (BondConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BondConfig{}, err
	}
	var w bondFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BondConfig{}, err
	}
	return w.Bond, nil
}

// MergeBond overlays non-zero fields from override onto base.
// This is used when loading a bond file and then applying overrides from the request.
func MergeBond(base, override BondConfig) BondConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.FaceValue != 0 {
		out.FaceValue = override.FaceValue
	}
	if override.CouponRate != 0 {
		out.CouponRate = override.CouponRate
	}
	if override.PaymentsPerYear != 0 {
		out.PaymentsPerYear = override.PaymentsPerYear
	}
	if override.YearsToMaturity != 0 {
		out.YearsToMaturity = override.YearsToMaturity
	}
	if override.YearsToCall != 0 {
		out.YearsToCall = override.YearsToCall
	}
	if override.CallPrice != 0 {
		out.CallPrice = override.CallPrice
	}
	if override.CurrentPrice != 0 {
		out.CurrentPrice = override.CurrentPrice
	}
	return out
}
