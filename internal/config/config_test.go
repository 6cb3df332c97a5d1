package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Inline(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
bond:
  name: inline
  face_value: 1000
  coupon_rate: 5
  payments_per_year: 2
  years_to_maturity: 10
  current_price: 950
solver:
  tolerance: 0.001
  max_iterations: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "inline", cfg.Bond.Name)
	assert.Equal(t, 950.0, cfg.Bond.CurrentPrice)

	p := cfg.Solver.ToSolverParams()
	assert.Equal(t, 0.001, p.Tolerance)
	assert.Equal(t, 50, p.MaxIterations)
}

func TestLoad_BondFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preset.yaml", `
bond:
  name: preset
  face_value: 1000
  coupon_rate: 5
  payments_per_year: 2
  years_to_maturity: 10
  current_price: 950
`)
	// bond_file relative paths resolve against the config file's directory.
	path := writeFile(t, dir, "config.yaml", `
bond_file: preset.yaml
bond:
  coupon_rate: 6
  current_price: 990
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "preset", cfg.Bond.Name)
	assert.Equal(t, 6.0, cfg.Bond.CouponRate, "override wins")
	assert.Equal(t, 990.0, cfg.Bond.CurrentPrice, "override wins")
	assert.Equal(t, 10.0, cfg.Bond.YearsToMaturity, "preset survives")
}

func TestLoad_InvalidBond(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
bond:
  face_value: -5
  coupon_rate: 5
  payments_per_year: 2
  years_to_maturity: 10
`)
	_, err := Load(path)
	assert.Error(t, err)

	// LoadUnchecked still parses it.
	cfg, err := LoadUnchecked(path)
	require.NoError(t, err)
	assert.Equal(t, -5.0, cfg.Bond.FaceValue)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMergeBond(t *testing.T) {
	base := BondConfig{
		Name:            "base",
		FaceValue:       1000,
		CouponRate:      5,
		PaymentsPerYear: 2,
		YearsToMaturity: 10,
		CurrentPrice:    950,
	}
	out := MergeBond(base, BondConfig{CouponRate: 7, YearsToCall: 4, CallPrice: 1020})
	assert.Equal(t, "base", out.Name)
	assert.Equal(t, 7.0, out.CouponRate)
	assert.Equal(t, 4.0, out.YearsToCall)
	assert.Equal(t, 1020.0, out.CallPrice)
	assert.Equal(t, 950.0, out.CurrentPrice)

	// Zero-value override changes nothing.
	assert.Equal(t, base, MergeBond(base, BondConfig{}))
}

func TestToModelTerms(t *testing.T) {
	b := BondConfig{
		Name:            "x",
		FaceValue:       100,
		CouponRate:      7.5,
		PaymentsPerYear: 1,
		YearsToMaturity: 5,
	}
	terms := b.ToModelTerms()
	assert.Equal(t, 100.0, terms.FaceValue)
	assert.Equal(t, 7.5, terms.CouponRate)
	require.NoError(t, terms.Validate())
}
