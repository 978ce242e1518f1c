package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "vsudoku.yaml")
	content := `
decay_shift: 1
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	tun, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, tun)

	d := Default()
	assert.Equal(t, d.DecayInterval, tun.DecayInterval)
	assert.Equal(t, d.PossibilitySampleCap, tun.PossibilitySampleCap)
	assert.Equal(t, d.ValidateContradictionBudget, tun.ValidateContradictionBudget)
	assert.Equal(t, d.ProgressFrequencyMask, tun.ProgressFrequencyMask)
}

func TestLoad_CustomValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "vsudoku.yaml")
	content := `
decay_shift: 3
decay_interval: 4096
possibility_sample_cap: 50
validate_contradiction_budget: 250
progress_frequency_mask: 255
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	tun, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, uint(3), tun.DecayShift)
	assert.Equal(t, uint64(4096), tun.DecayInterval)
	assert.Equal(t, int64(50), tun.PossibilitySampleCap)
	assert.Equal(t, int64(250), tun.ValidateContradictionBudget)
	assert.Equal(t, uint64(255), tun.ProgressFrequencyMask)
}

func TestLoad_FileNotFound(t *testing.T) {
	tun, err := Load("/nonexistent/path/vsudoku.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), tun)
}

func TestLoad_InvalidDecayInterval(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "vsudoku.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("decay_interval: 0\n"), 0644))

	_, err := Load(configFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decay_interval must be at least 1")
}

func TestValidate_NegativeSampleCap(t *testing.T) {
	tun := Default()
	tun.PossibilitySampleCap = -1
	err := tun.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "possibility_sample_cap must not be negative")
}

func TestValidate_NegativeBudget(t *testing.T) {
	tun := Default()
	tun.ValidateContradictionBudget = -1
	err := tun.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validate_contradiction_budget must not be negative")
}
