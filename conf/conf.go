package conf

import (
	"fmt"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const DefaultApiUrl = "https://api.godaddy.com"

type Conf struct {
	Api    ApiConf  `yaml:"api"`
	Output string   `yaml:"output"`
	Strict bool     `yaml:"strict"`
	Zone   ZoneConf `yaml:"zone"`
}

type ApiConf struct {
	Url string `yaml:"url"`
}

type ZoneConf struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Visibility  string `yaml:"visibility"`
}

// Load reads a YAML config file and fills in defaults for missing values.
// A missing path returns the defaults unchanged.
func Load(fs afero.Fs, path string) (Conf, error) {
	c := Conf{
		Api:    ApiConf{Url: DefaultApiUrl},
		Output: "migrated.tf",
	}
	if path == "" {
		return c, nil
	}
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	if c.Api.Url == "" {
		c.Api.Url = DefaultApiUrl
	}
	if c.Output == "" {
		c.Output = "migrated.tf"
	}
	return c, nil
}
