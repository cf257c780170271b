package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"optconst/internal/directive"
)

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// File is the root of a config file.
type File struct {
	Version string `yaml:"version" toml:"version"`
	// Output overrides the generated file name.
	Output string `yaml:"output,omitempty" toml:"output,omitempty"`
	Enums  []Enum `yaml:"enums" toml:"enums"`
}

// Enum declares the attribute of one enumeration.
type Enum struct {
	Type        string   `yaml:"type" toml:"type"`
	Family      string   `yaml:"family" toml:"family"`
	Annotations []string `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
}

// Attribute converts e into a directive attribute.
func (e Enum) Attribute() directive.Attribute {
	return directive.Attribute{
		Family:      e.Family,
		Annotations: append([]string(nil), e.Annotations...),
	}
}

// Attributes returns the declared attributes keyed by type name.
func (f *File) Attributes() map[string]directive.Attribute {
	out := make(map[string]directive.Attribute, len(f.Enums))
	for _, e := range f.Enums {
		out[e.Type] = e.Attribute()
	}

	return out
}

// LoadFile reads a config file, choosing the decoder by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Parse(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .toml)", ext)
	}
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return finish(&f)
}

// ParseTOML parses TOML data into a File.
func ParseTOML(data []byte) (*File, error) {
	var f File

	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	return finish(&f)
}

func finish(f *File) (*File, error) {
	applyDefaults(f)

	if err := Validate(f); err != nil {
		return nil, err
	}

	return f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Enums {
		f.Enums[i].Type = strings.TrimSpace(f.Enums[i].Type)
		f.Enums[i].Family = strings.TrimSpace(f.Enums[i].Family)
	}
}

// CheckOutput reports whether name can serve as the generated file name: a
// bare, non-test .go file name inside the package directory.
func CheckOutput(name string) error {
	if filepath.Base(name) != name || name == "." || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return fmt.Errorf("output %q must be a bare .go file name", name)
	}

	return nil
}

// Validate checks the schema version, type names and every attribute.
func Validate(f *File) error {
	var errs []error

	if f.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version %q", f.Version))
	}

	if f.Output != "" {
		if err := CheckOutput(f.Output); err != nil {
			errs = append(errs, err)
		}
	}

	seen := make(map[string]bool, len(f.Enums))
	for i, e := range f.Enums {
		if e.Type == "" {
			errs = append(errs, fmt.Errorf("enums[%d]: missing type", i))
			continue
		}

		if seen[e.Type] {
			errs = append(errs, fmt.Errorf("enums[%d]: type %s declared more than once", i, e.Type))
		}

		seen[e.Type] = true

		if err := e.Attribute().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("enums[%d] (%s): %w", i, e.Type, err))
		}
	}

	return errors.Join(errs...)
}
