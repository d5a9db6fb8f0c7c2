package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default file names used when nothing else names a location.
const (
	DefaultProductsFile = "products.txt"
	DefaultUsersFile    = "users.txt"
)

// Environment variables that override the config file.
const (
	EnvProductsFile = "STOCKROOM_PRODUCTS_FILE"
	EnvUsersFile    = "STOCKROOM_USERS_FILE"
)

// fileNames are probed in order when no explicit config path is given.
var fileNames = []string{"stockroom.yml", "stockroom.yaml"}

// Config holds the settings loaded from stockroom.yml.
type Config struct {
	ProductsFile string `yaml:"productsFile,omitempty"`
	UsersFile    string `yaml:"usersFile,omitempty"`
	Verbose      bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read stockroom.yml or stockroom.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*Config, error) {
	for _, name := range fileNames {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if err == nil {
			return cfg, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return &Config{}, nil
}

// LoadFile reads the config at path. Relative storage paths inside the file
// are resolved against the file's directory. A missing file is an error the
// caller can test with os.IsNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	base := filepath.Dir(path)
	cfg.ProductsFile = resolve(base, cfg.ProductsFile)
	cfg.UsersFile = resolve(base, cfg.UsersFile)
	return &cfg, nil
}

// ApplyEnv overrides storage paths with any non-empty environment values.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvProductsFile); ok && v != "" {
		c.ProductsFile = v
	}
	if v, ok := lookup(EnvUsersFile); ok && v != "" {
		c.UsersFile = v
	}
}

// ApplyDefaults fills unset storage paths with the default file names in dir.
func (c *Config) ApplyDefaults(dir string) {
	if c.ProductsFile == "" {
		c.ProductsFile = filepath.Join(dir, DefaultProductsFile)
	}
	if c.UsersFile == "" {
		c.UsersFile = filepath.Join(dir, DefaultUsersFile)
	}
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
