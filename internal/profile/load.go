package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var builtinYAML []byte

var builtin = sync.OnceValues(func() (*Profile, error) {
	return Parse(builtinYAML, FormatYAML)
})

// Format identifies the encoding of a profile document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Default returns the profile shipped with the site. The record is parsed
// once and shared; callers must treat it as read-only.
func Default() (*Profile, error) {
	return builtin()
}

// Load reads a profile from a YAML or JSON file, chosen by extension.
// An empty path returns the built-in profile.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}

	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("unsupported profile format %q: use .yaml, .yml or .json", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a profile document.
func Parse(data []byte, format Format) (*Profile, error) {
	var p Profile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown profile format %q", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
