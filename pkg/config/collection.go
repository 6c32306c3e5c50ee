package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/getimpose/impose/pkg/imposter"
)

// Common errors for collection loading.
var (
	ErrFileNotFound = errors.New("collection file not found")
	ErrEmptyFile    = errors.New("collection file is empty")
	ErrInvalidJSON  = errors.New("invalid JSON syntax")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// Collection is a set of imposters to create at startup.
type Collection struct {
	// Name is an optional label for the collection.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Imposters are created in order.
	Imposters []imposter.Config `json:"imposters" yaml:"imposters"`
}

// LoadCollection reads a Collection from a JSON or YAML file. The
// format is auto-detected by extension (.yaml/.yml for YAML, JSON
// otherwise).
func LoadCollection(path string) (*Collection, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return parseYAMLCollection(data, path)
	}
	return parseJSONCollection(data, path)
}

func parseJSONCollection(data []byte, path string) (*Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrInvalidJSON, path, err)
	}
	return &c, nil
}

func parseYAMLCollection(data []byte, path string) (*Collection, error) {
	var c Collection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w in %s: %v", ErrInvalidYAML, path, err)
	}
	return &c, nil
}
