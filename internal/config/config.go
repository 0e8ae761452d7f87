// Package config loads the optional quoc.yaml driver configuration: the
// external C++ compiler to invoke and any extra include directories it
// needs, the way internal/driver discovers a toolchain beyond plain
// PATH/CXX lookup.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the driver configuration. Every field is optional; the zero
// value means "use the plain env/PATH discovery of §6.1".
type Config struct {
	// CXXPath overrides compiler discovery. The CXX environment variable
	// takes precedence over this when both are set.
	CXXPath string `yaml:"cxx_path"`
	// IncludeDirs are extra "-I" directories passed to the compiler.
	IncludeDirs []string `yaml:"include_dirs"`
	// OutDir is where generated .cpp/temp files are written; empty means
	// the system temp directory.
	OutDir string `yaml:"out_dir"`
}

// Load reads and parses a quoc.yaml file at path. A missing file is not
// an error: it returns a zero Config so the driver falls back to plain
// discovery.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolvedCXXPath returns the compiler path the driver should use,
// applying the CXX environment variable's precedence over the config
// file's cxx_path per §6.1.
func (c Config) ResolvedCXXPath() string {
	if cxx := os.Getenv("CXX"); cxx != "" {
		return cxx
	}
	return c.CXXPath
}
