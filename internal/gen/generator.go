package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"

	"optconst/internal/analyze"
)

// DefaultRuntimeImport is the import path of the runtime package generated
// code depends on.
const DefaultRuntimeImport = "optconst"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimeImport is the import path of the optconst runtime package.
	RuntimeImport string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// DebugDir, when set, receives the unformatted source if formatting fails.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimeImport:    DefaultRuntimeImport,
		GenerateComments: true,
	}
}

// Generator generates marker-type families for analysed enumerations.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "color_optconst.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// ErrNothingToGenerate is returned for a package without enumerations.
var ErrNothingToGenerate = errors.New("no enumerations to generate")

// Generate generates the output file of an analysed package. The package
// must be free of diagnostic errors. When formatting fails the unformatted
// file is returned along with the error.
func (g *Generator) Generate(pkg *analyze.Package) ([]GeneratedFile, error) {
	if pkg.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("package %s: %w", pkg.Path, pkg.Diagnostics.Error())
	}

	if len(pkg.Enums) == 0 {
		return nil, fmt.Errorf("package %s: %w", pkg.Path, ErrNothingToGenerate)
	}

	file, err := g.generateFile(pkg)
	if err != nil {
		if file != nil {
			return []GeneratedFile{*file}, fmt.Errorf("generating %s: %w", pkg.Output, err)
		}

		return nil, fmt.Errorf("generating %s: %w", pkg.Output, err)
	}

	return []GeneratedFile{*file}, nil
}

func (g *Generator) generateFile(pkg *analyze.Package) (*GeneratedFile, error) {
	data := g.buildTemplateData(pkg)

	var buf bytes.Buffer
	if err := familyTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, pkg.Output, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: pkg.Output,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: pkg.Output,
		Content:  formatted,
	}, nil
}
