package helpers

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// HookManifest is the subset of a pre-commit configuration the bootstrapper
// cares about: enough to report what will be registered.
type HookManifest struct {
	Repos []HookRepo `yaml:"repos"`
}

type HookRepo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks"`
}

type Hook struct {
	ID string `yaml:"id"`
}

// LoadHookManifest reads and parses the hook manifest at path.
func LoadHookManifest(path string) (*HookManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hook manifest: %w", err)
	}

	var m HookManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse hook manifest: %w", err)
	}

	return &m, nil
}

// HookCount returns the number of hooks declared across all repos.
func (m *HookManifest) HookCount() int {
	n := 0
	for _, repo := range m.Repos {
		n += len(repo.Hooks)
	}
	return n
}
