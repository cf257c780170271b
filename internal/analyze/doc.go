// Package analyze loads the package holding an enumeration and validates
// it for the optconst generator.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. An
// enumeration is a defined type with an integer or string underlying type;
// its variants are the package-level constants of exactly that type, in
// declaration order (files sorted by name, then source position).
//
// Key types:
//   - EnumID: package import path + type name
//   - Enum: validated enumeration with its attribute and variants
//   - Names: every identifier the generator will emit for an Enum
//   - Package: the analysed package plus its diagnostics
package analyze
