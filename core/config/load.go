package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// resolvePath turns a directory path into the configuration file inside it.
func resolvePath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, ConfigurationName)
	}
	return path
}

// Load reads and validates the configuration at path. An empty path returns
// the embedded defaults without touching the filesystem.
func Load(path string) (*Configuration, error) {
	if path == "" {
		return Default(), nil
	}
	path = resolvePath(path)

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	return &out, nil
}

// Initialize writes the default configuration to path, refusing to clobber
// an existing file.
func Initialize(path string, logger *log.Logger) error {
	path = resolvePath(path)

	switch _, err := os.Stat(path); {
	case err == nil:
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := os.WriteFile(path, defaultConfigBytes, 0644); err != nil {
		return err
	}

	logger.Printf("Created %s", path)
	return nil
}
