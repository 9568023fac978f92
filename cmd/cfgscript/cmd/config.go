package cmd

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the optional cfgscript.yaml sitting in -d/--directory: a
// list of default sources to try (relative ones resolved against the
// same directory) and parameters to inject before Load, so a project
// doesn't have to repeat -s/--source flags on every invocation.
type Config struct {
	Sources    []string          `yaml:"sources"`
	Parameters map[string]string `yaml:"parameters"`
}

// LoadConfig reads cfgscript.yaml from directory. A missing file is
// not an error: it yields a zero-value Config, so commands work
// against bare -s/--source flags with no project file at all.
func LoadConfig() (Config, error) {
	configFilename := path.Join(directory, "cfgscript.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, nil
	}

	data, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading %s", configFilename)
	}

	var result Config
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", configFilename)
	}
	return result, nil
}

// resolveSources combines the -s/--source flags (tried first) with the
// project config's sources, resolving relative project-config paths
// against -d/--directory.
func resolveSources(cfg Config) []string {
	all := append([]string(nil), sources...)
	for _, s := range cfg.Sources {
		if !path.IsAbs(s) {
			s = path.Join(directory, s)
		}
		all = append(all, s)
	}
	return all
}
