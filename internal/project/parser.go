package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const (
	configDir  = ".bleperm"
	configFile = "project.yaml"
)

// ConfigPath returns the full path to .bleperm/project.yaml for a project.
func ConfigPath(root string) string {
	return filepath.Join(root, configDir, configFile)
}

// Exists reports whether the project at root has a project file.
func Exists(root string) bool {
	_, err := os.Stat(ConfigPath(root))
	return err == nil
}

// Load reads, validates, and parses .bleperm/project.yaml under root.
func Load(root string) (*Config, error) {
	return LoadFile(ConfigPath(root))
}

// LoadFile reads, validates, and parses a project file.
func LoadFile(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating project config %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid project config %s: %s", path, result.Summary())
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing project config %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to .bleperm/project.yaml under root.
func Save(root string, cfg *Config) error {
	path := ConfigPath(root)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}

	return nil
}

// Init creates the .bleperm/ directory and writes cfg. It refuses to
// overwrite an existing project file.
func Init(root string, cfg *Config) error {
	if Exists(root) {
		return fmt.Errorf("project already initialized: %s exists", ConfigPath(root))
	}

	dir := filepath.Join(root, configDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", configDir, err)
	}

	return Save(root, cfg)
}

// FindRoot walks up from dir to the nearest directory holding a project file.
func FindRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	for d := abs; ; d = filepath.Dir(d) {
		if Exists(d) {
			return d, nil
		}
		if filepath.Dir(d) == d {
			return "", fmt.Errorf("no %s found in %s or any parent", filepath.Join(configDir, configFile), abs)
		}
	}
}

// Relative returns p relative to root with forward slashes, for storing in
// the project file. Paths outside root are kept as given.
func Relative(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return filepath.ToSlash(rel)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
