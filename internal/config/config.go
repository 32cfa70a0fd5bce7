package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the optional per-project settings loaded from
// flowrec.yaml. Flags and environment variables override these values.
type ProjectConfig struct {
	// TargetOrg is the org alias or username passed to the sf CLI.
	TargetOrg string `yaml:"target_org,omitempty"`

	// APIVersion is the metadata API version for newly created documents.
	APIVersion string `yaml:"api_version,omitempty"`

	// DescriptorDir is where flow definition descriptors live, relative
	// to the project root.
	DescriptorDir string `yaml:"descriptor_dir,omitempty"`

	// QueryTimeout bounds the remote version query, e.g. "2m".
	QueryTimeout string `yaml:"query_timeout,omitempty"`

	// Materialize enables retrieving descriptors from the org before
	// editing them.
	Materialize bool `yaml:"materialize,omitempty"`
}

const ConfigFileName = "flowrec.yaml"

// Load reads flowrec.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
