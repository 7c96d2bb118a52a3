package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DeploymentProfile is a named bundle of deployment-specific settings: a
// CEL rule-extension budget, per-capability risk overrides, and a decision
// timeout. This package only loads them; nothing in pkg/ruleext,
// pkg/capability, or pkg/intent reads a DeploymentProfile, and
// pkg/capability's risk table has no override hook. Adapted from
// the teacher's RegionalProfile/profile_<code>.yaml loader, generalized
// from jurisdictional compliance knobs to deployment knobs for a single
// kernel.
type DeploymentProfile struct {
	Name                string            `yaml:"name" json:"name"`
	Code                string            `yaml:"code" json:"code"`
	RuleExtensionBudget int64             `yaml:"rule_extension_budget" json:"rule_extension_budget"`
	DecisionTimeoutMs   int               `yaml:"decision_timeout_ms" json:"decision_timeout_ms"`
	CapabilityOverrides map[string]string `yaml:"capability_overrides,omitempty" json:"capability_overrides,omitempty"`
}

// LoadProfile loads a single deployment profile by code from
// profilesDir/profile_<code>.yaml.
func LoadProfile(profilesDir, code string) (*DeploymentProfile, error) {
	code = strings.ToLower(code)
	path := filepath.Join(profilesDir, fmt.Sprintf("profile_%s.yaml", code))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", code, err)
	}

	var profile DeploymentProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parse profile %q: %w", code, err)
	}

	if profile.Code == "" {
		profile.Code = code
	}
	return &profile, nil
}

// LoadAllProfiles loads every profile_*.yaml file in profilesDir.
func LoadAllProfiles(profilesDir string) (map[string]*DeploymentProfile, error) {
	matches, err := filepath.Glob(filepath.Join(profilesDir, "profile_*.yaml"))
	if err != nil {
		return nil, err
	}

	profiles := make(map[string]*DeploymentProfile, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var profile DeploymentProfile
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		if profile.Code == "" {
			base := filepath.Base(path)
			profile.Code = strings.TrimSuffix(strings.TrimPrefix(base, "profile_"), ".yaml")
		}
		profiles[profile.Code] = &profile
	}
	return profiles, nil
}
