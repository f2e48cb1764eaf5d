// Package config loads hashkv settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultInitialBuckets = 5
	DefaultRehashRatio    = 2.0
	DefaultHost           = "localhost"
	DefaultPort           = 5002
)

// tries reading configs in this order, with the first one that is present
// being used
var configFilepaths = []string{"./hashkv.yml", "/etc/hashkv/hashkv.yml"}

type TableConfig struct {
	InitialBuckets int     `yaml:"initial_buckets"`
	RehashRatio    float64 `yaml:"rehash_ratio"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type Config struct {
	Table  TableConfig  `yaml:"table"`
	Server ServerConfig `yaml:"server"`
}

// Default returns the compiled-in settings.
func Default() Config {
	return Config{
		Table: TableConfig{
			InitialBuckets: DefaultInitialBuckets,
			RehashRatio:    DefaultRehashRatio,
		},
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
	}
}

// Load reads the first config file present, starting with the path named
// by HASHKV_CONFIG when set. A missing file is not an error and yields the
// defaults; a file that exists but fails to parse or validate is.
func Load() (Config, error) {
	paths := configFilepaths
	if p := env.Str("HASHKV_CONFIG"); p != "" {
		paths = append([]string{p}, paths...)
	}

	for _, filepath := range paths {
		if _, err := os.Stat(filepath); os.IsNotExist(err) {
			continue
		}
		return loadFile(filepath)
	}
	return Default(), nil
}

// loadFile unmarshals path over the defaults, so fields absent from the
// file keep their default values.
func loadFile(path string) (Config, error) {
	c := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}

	if err := yaml.Unmarshal(content, &c); err != nil {
		return c, err
	}

	if err := c.validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Table.InitialBuckets < 1 {
		return fmt.Errorf("initial_buckets must be at least 1, got %d", c.Table.InitialBuckets)
	}
	if c.Table.RehashRatio <= 0 {
		return fmt.Errorf("rehash_ratio must be positive, got %v", c.Table.RehashRatio)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Server.Port)
	}
	return nil
}
