package analyze

import (
	"go/token"
	"strconv"

	"optconst/internal/common"
	"optconst/internal/directive"
	"optconst/internal/diagnostic"
)

// GeneratedHeader opens every file the generator writes. A file carrying it
// may be overwritten; any other file is left alone.
const GeneratedHeader = "// Code generated by optconst. DO NOT EDIT."

// EnumID uniquely identifies an enumeration by its package path and name.
type EnumID struct {
	PkgPath string // e.g., "optconst/examples/color"
	Name    string // e.g., "Color"
}

// String returns a human-readable representation of the EnumID.
func (id EnumID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the underlying kind of an enumeration type.
type Kind int

const (
	KindUnknown  Kind = iota
	KindSigned        // int, int8, ..., int64
	KindUnsigned      // uint, uint8, ..., uintptr
	KindString        // string
)

// Variant is one declared constant of an enumeration.
type Variant struct {
	Name    string         // constant identifier, e.g. "Red"
	Ordinal int            // 0-based declaration order
	Value   string         // exact constant value, e.g. "0" or "\"north\""
	Pos     token.Position // declaration position
}

// Enum is a validated enumeration ready for generation.
type Enum struct {
	ID        EnumID
	Kind      Kind
	Attribute directive.Attribute
	Variants  []Variant
	Pos       token.Position
}

// Exported reports whether the enumeration type is exported.
func (e *Enum) Exported() bool {
	return token.IsExported(e.ID.Name)
}

// Names returns the identifiers generated for e.
func (e *Enum) Names() Names {
	family := e.Attribute.Family
	lower := common.LowerFirst(family)

	n := Names{
		Family:     family,
		Constraint: family + "Tag",
		Accessor:   lower + "Variant",
		Ordinal:    lower + "Ordinal",
		Convert:    "TryInto" + family,
		Tags:       make([]string, len(e.Variants)),
		Aliases:    make([]string, len(e.Variants)),
	}

	if !token.IsExported(family) {
		n.Convert = "tryInto" + common.UpperFirst(family)
	}

	for i, v := range e.Variants {
		n.Tags[i] = n.Constraint + strconv.Itoa(v.Ordinal)
		n.Aliases[i] = family + common.UpperFirst(v.Name)
	}

	return n
}

// Names lists the package-level identifiers generated for one enumeration.
type Names struct {
	Family     string   // marker-type family, e.g. ColorConst
	Constraint string   // closed tag constraint, e.g. ColorConstTag
	Accessor   string   // unexported tag method, e.g. colorConstVariant
	Ordinal    string   // unexported ordinal helper, e.g. colorConstOrdinal
	Convert    string   // tagged conversion, e.g. TryIntoColorConst
	Tags       []string // per-variant tag types, e.g. ColorConstTag0
	Aliases    []string // per-variant aliases, e.g. ColorConstRed
}

// TopLevel returns every package-level identifier in Names, in a fixed order.
func (n Names) TopLevel() []string {
	out := make([]string, 0, 4+len(n.Tags)+len(n.Aliases))
	out = append(out, n.Family, n.Constraint, n.Ordinal, n.Convert)
	out = append(out, n.Tags...)
	out = append(out, n.Aliases...)

	return out
}

// DynamicMethods are declared on every processed enumeration type.
var DynamicMethods = []string{"MaybeConst", "IntoValue", "TryFromValue"}

// Package is the analysed package.
type Package struct {
	Path string // import path
	Name string // package name
	Dir  string // directory holding the sources
	// Output is the name of the generated file inside Dir.
	Output string
	// Enums are the enumerations to generate, in declaration order.
	Enums []*Enum
	// Diagnostics gathered while analysing.
	Diagnostics diagnostic.Diagnostics
}
