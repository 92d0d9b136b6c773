// Package config loads artifact options from TOML or YAML files.
//
// A file only needs to name the values it changes: it is decoded on top of
// artifact.DefaultConfig, so absent keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/artifact"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor
// YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// file is the on-disk schema. Policy is keyed by artifact name.
type file struct {
	artifact.Config `yaml:",inline"`

	Policy map[string]bool `toml:"policy" yaml:"policy"`
}

// Load reads path and returns the merged configuration.
func Load(path string) (*artifact.Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parse(data, decodeTOML)
	case ".yaml", ".yml":
		return parse(data, yaml.Unmarshal)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// ParseTOML decodes TOML config data.
func ParseTOML(data []byte) (*artifact.Config, error) {
	return parse(data, decodeTOML)
}

// ParseYAML decodes YAML config data.
func ParseYAML(data []byte) (*artifact.Config, error) {
	return parse(data, yaml.Unmarshal)
}

func decodeTOML(data []byte, v any) error {
	md, err := toml.Decode(string(data), v)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func parse(data []byte, decode func([]byte, any) error) (*artifact.Config, error) {
	f := file{Config: *artifact.DefaultConfig()}
	if err := decode(data, &f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg := f.Config
	for name, perTile := range f.Policy {
		t, err := artifact.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("config: policy: %w", err)
		}
		cfg.Policy[t] = perTile
	}

	artifact.Logger().Debug("config loaded", "policy_overrides", len(f.Policy))
	return &cfg, nil
}
