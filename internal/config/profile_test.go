package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const prodProfileYAML = `
name: Production
code: prod
rule_extension_budget: 50000
decision_timeout_ms: 30000
capability_overrides:
  SUBMIT_FORM: FORBIDDEN
`

func writeProfile(t *testing.T, dir, filename, contents string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(contents), 0o644))
}

func TestLoadProfileReadsFieldsFromYAML(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "profile_prod.yaml", prodProfileYAML)

	profile, err := LoadProfile(dir, "prod")
	assert.NoError(t, err)
	assert.Equal(t, "Production", profile.Name)
	assert.Equal(t, "prod", profile.Code)
	assert.EqualValues(t, 50000, profile.RuleExtensionBudget)
	assert.Equal(t, 30000, profile.DecisionTimeoutMs)
	assert.Equal(t, "FORBIDDEN", profile.CapabilityOverrides["SUBMIT_FORM"])
}

func TestLoadProfileIsCaseInsensitiveOnCode(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "profile_prod.yaml", prodProfileYAML)

	profile, err := LoadProfile(dir, "PROD")
	assert.NoError(t, err)
	assert.Equal(t, "prod", profile.Code)
}

func TestLoadProfileMissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadProfile(dir, "nonexistent")
	assert.Error(t, err)
}

func TestLoadAllProfilesGlobsEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "profile_prod.yaml", prodProfileYAML)
	writeProfile(t, dir, "profile_staging.yaml", "name: Staging\ndecision_timeout_ms: 5000\n")

	profiles, err := LoadAllProfiles(dir)
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "prod", profiles["prod"].Code)
	assert.Equal(t, "staging", profiles["staging"].Code, "code defaults from filename when absent from YAML")
}
