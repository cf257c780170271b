package gen

import (
	"slices"
	"unicode"
	"unicode/utf8"

	"optconst/internal/analyze"
	"optconst/internal/common"
)

// templateData holds all data needed for the family template.
type templateData struct {
	Header           string
	PackageName      string
	Imports          []importSpec
	Qualifier        string // runtime package qualifier including the dot, or ""
	GenerateComments bool
	Enums            []enumData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
	// Group separates the standard library from other imports.
	Group int
}

// enumData is the per-enumeration part of templateData.
type enumData struct {
	Type        string
	Family      string
	Constraint  string
	Accessor    string
	Ordinal     string
	Convert     string
	TypeParam   string
	Receiver    string
	Param       string
	Annotations []string
	Variants    []variantData
}

// variantData describes one variant and the identifiers generated for it.
type variantData struct {
	Name    string
	Ordinal int
	Tag     string
	Alias   string
}

// buildTemplateData constructs the template data for one package.
func (g *Generator) buildTemplateData(pkg *analyze.Package) *templateData {
	data := &templateData{
		Header:           analyze.GeneratedHeader,
		PackageName:      pkg.Name,
		GenerateComments: g.config.GenerateComments,
	}

	data.Imports = append(data.Imports, importSpec{Path: "fmt"})

	if pkg.Path != g.config.RuntimeImport {
		alias := common.PkgAlias(g.config.RuntimeImport)
		data.Imports = append(data.Imports, importSpec{Path: g.config.RuntimeImport, Group: 1})
		data.Qualifier = alias + "."
	}

	for _, enum := range pkg.Enums {
		data.Enums = append(data.Enums, buildEnumData(enum))
	}

	return data
}

func buildEnumData(enum *analyze.Enum) enumData {
	names := enum.Names()

	variantNames := make([]string, 0, len(enum.Variants))
	for _, v := range enum.Variants {
		variantNames = append(variantNames, v.Name)
	}

	ed := enumData{
		Type:        enum.ID.Name,
		Family:      names.Family,
		Constraint:  names.Constraint,
		Accessor:    names.Accessor,
		Ordinal:     names.Ordinal,
		Convert:     names.Convert,
		TypeParam:   pickName([]string{"D", "Tag", "Variant"}, enum.ID.Name),
		Receiver:    receiverName(enum.ID.Name),
		Param:       pickName([]string{"v", "value", "in"}, append(variantNames, enum.ID.Name)...),
		Annotations: enum.Attribute.Annotations,
	}

	for i, v := range enum.Variants {
		ed.Variants = append(ed.Variants, variantData{
			Name:    v.Name,
			Ordinal: v.Ordinal,
			Tag:     names.Tags[i],
			Alias:   names.Aliases[i],
		})
	}

	return ed
}

// pickName returns the first candidate not listed in taken.
func pickName(candidates []string, taken ...string) string {
	for _, c := range candidates {
		if !slices.Contains(taken, c) {
			return c
		}
	}

	return candidates[len(candidates)-1] + "_"
}

// receiverName derives a short receiver name from a type name.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if !unicode.IsLetter(r) {
		return "v"
	}

	return string(unicode.ToLower(r))
}
