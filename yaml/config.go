// Package yaml loads seofetch configuration files using gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/seofetch"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the YAML file at path and overlays it on
// seofetch.DefaultConfig. Unknown keys are rejected. An empty file yields
// the defaults.
func LoadConfig(path string) (*seofetch.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, seofetch.Errorf(seofetch.ENOTFOUND, "config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML data over the default config and validates the
// result.
func ParseConfig(data []byte) (*seofetch.Config, error) {
	cfg := seofetch.DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, seofetch.Errorf(seofetch.EINVALID, "invalid config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
