package loader

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRoot is the pipelines root used when none is given.
	DefaultRoot = "pipelines"
	// ConfigFileName is the name of the config file inside a pipeline folder.
	ConfigFileName = "config.yaml"
)

// Config is a parsed config.yaml. Only metadata.classname is interpreted by the loader, the rest belongs to the
// pipeline.
type Config map[string]any

func (c Config) metadata(key string) string {
	meta, ok := c["metadata"].(map[string]any)
	if !ok {
		return ""
	}

	value, _ := meta[key].(string)

	return value
}

// Classname returns metadata.classname, or an empty string if it is missing or not a string.
func (c Config) Classname() string {
	return c.metadata("classname")
}

// DisplayName returns metadata.name, or an empty string.
func (c Config) DisplayName() string {
	return c.metadata("name")
}

func decodeConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	cfg := Config{}

	err = yaml.Unmarshal(content, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}

	return cfg, nil
}
