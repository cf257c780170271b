package analyze

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"optconst/internal/common"
	"optconst/internal/diagnostic"
	"optconst/internal/directive"
	"optconst/internal/suggest"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// probeMode is enough to learn the package name and its files.
const probeMode = packages.NeedName | packages.NeedFiles

// Config controls which package is loaded and which enumerations are taken.
type Config struct {
	// Dir is the working directory for package loading. Empty means the
	// current directory.
	Dir string
	// Patterns selects the package; exactly one package must match.
	Patterns []string
	// Types restricts generation to the named types. Empty means every type
	// carrying an attribute, from a directive or from Attributes.
	Types []string
	// Attributes are attributes supplied outside the source, keyed by type
	// name (see package config).
	Attributes map[string]directive.Attribute
	// Output overrides the generated file name.
	Output string
	// BuildTags are passed to the build system as -tags.
	BuildTags []string
	// Env overrides the environment of the go command (nil: inherit).
	Env []string
}

// DefaultConfig returns a configuration that loads the package in the
// current directory.
func DefaultConfig() Config {
	return Config{
		Patterns: []string{"."},
	}
}

// OutputFilename returns the name of the generated file for a package.
func OutputFilename(pkgName, override string) string {
	if override != "" {
		return override
	}

	return strings.ToLower(pkgName) + "_optconst.go"
}

// Analyzer loads one Go package and extracts its enumerations.
type Analyzer struct {
	config   Config
	fset     *token.FileSet
	typeErrs []packages.Error
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(config Config) *Analyzer {
	if len(config.Patterns) == 0 {
		config.Patterns = []string{"."}
	}

	return &Analyzer{config: config}
}

// Load loads the package and analyses the selected enumerations. On
// generation-time failures the returned Package carries the diagnostics and
// the error combines them.
func (a *Analyzer) Load() (*Package, error) {
	probe, err := a.load(probeMode, nil)
	if err != nil {
		return nil, err
	}

	if common.IsEmpty(probe.GoFiles) {
		return nil, fmt.Errorf("package %s has no Go files", probe.PkgPath)
	}

	result := &Package{
		Path:   probe.PkgPath,
		Name:   probe.Name,
		Dir:    filepath.Dir(probe.GoFiles[0]),
		Output: OutputFilename(probe.Name, a.config.Output),
	}

	overlay, err := staleOverlay(filepath.Join(result.Dir, result.Output), result.Name)
	if err != nil {
		return nil, err
	}

	pkg, err := a.load(LoadMode, overlay)
	if err != nil {
		return nil, err
	}

	fatal, typeErrs := packageErrors(pkg)
	if len(fatal) > 0 {
		return nil, fmt.Errorf("package errors: %v", fatal)
	}

	a.fset = pkg.Fset
	a.typeErrs = typeErrs
	a.processPackage(pkg, result)

	if result.Diagnostics.HasErrors() {
		return result, result.Diagnostics.Error()
	}

	return result, nil
}

func (a *Analyzer) load(mode packages.LoadMode, overlay map[string][]byte) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    mode,
		Dir:     a.config.Dir,
		Env:     a.config.Env,
		Overlay: overlay,
	}

	if len(a.config.BuildTags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(a.config.BuildTags, ",")}
	}

	pkgs, err := packages.Load(cfg, a.config.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if !common.IsSingle(pkgs) {
		return nil, fmt.Errorf("patterns %v matched %d packages, want exactly one", a.config.Patterns, len(pkgs))
	}

	return pkgs[0], nil
}

// packageErrors splits the errors of pkg. Type errors are tolerated: code
// using identifiers from the blanked-out output does not type-check until
// the file is regenerated, and the constants of an enumeration still
// resolve without it.
func packageErrors(pkg *packages.Package) (fatal, typeErrs []packages.Error) {
	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			typeErrs = append(typeErrs, e)
			continue
		}

		fatal = append(fatal, e)
	}

	return fatal, typeErrs
}

// staleOverlay blanks out a previously generated file so that a stale
// output never takes part in type checking. A file at path that was not
// written by the generator is an error: it would be overwritten.
func staleOverlay(path, pkgName string) (map[string][]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("checking previous output: %w", err)
	}
	defer f.Close()

	first, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && first == "" {
		return nil, fmt.Errorf("reading previous output %s: %w", path, err)
	}

	if strings.TrimSpace(first) != GeneratedHeader {
		return nil, fmt.Errorf("refusing to overwrite %s: it was not generated by optconst", path)
	}

	var stub bytes.Buffer
	stub.WriteString(GeneratedHeader + "\n\npackage " + pkgName + "\n")

	return map[string][]byte{path: stub.Bytes()}, nil
}

// typeDecl is a type declaration found in the package syntax.
type typeDecl struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

// processPackage selects the enumerations and validates each one.
func (a *Analyzer) processPackage(pkg *packages.Package, result *Package) {
	files := sortedFiles(pkg)

	var (
		order []string
		decls = make(map[string]typeDecl)
	)

	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					doc = gen.Doc
				}

				order = append(order, ts.Name.Name)
				decls[ts.Name.Name] = typeDecl{spec: ts, doc: doc}
			}
		}
	}

	targets := a.selectTargets(order, decls, result)

	if !a.checkImportNames(pkg, result) {
		return
	}

	taken := make(map[string]string)

	for _, name := range targets {
		enum := a.analyzeEnum(pkg, files, decls[name], result)
		if enum == nil {
			continue
		}

		if !a.checkCollisions(pkg, enum, taken, result) {
			continue
		}

		if !enum.Exported() && token.IsExported(enum.Attribute.Family) {
			result.Diagnostics.Add(diagnostic.Diagnostic{
				Severity: diagnostic.DiagnosticWarning,
				Code:     diagnostic.CodeUnexportedEnum,
				Message:  fmt.Sprintf("exported family %s for unexported enumeration", enum.Attribute.Family),
				Enum:     name,
				Pos:      enum.Pos.String(),
			})
		}

		result.Diagnostics.AddInfo(diagnostic.CodeSummary,
			fmt.Sprintf("%d %s variants, family %s", len(enum.Variants), strings.ToLower(enum.Kind.String()), enum.Attribute.Family),
			name, "")

		result.Enums = append(result.Enums, enum)
	}
}

// selectTargets returns the names of the types to process, in declaration
// order, and reports requested types that do not exist.
func (a *Analyzer) selectTargets(order []string, decls map[string]typeDecl, result *Package) []string {
	requested := make(map[string]bool)

	if len(a.config.Types) > 0 {
		for _, name := range a.config.Types {
			requested[name] = true
		}
	} else {
		for name := range a.config.Attributes {
			requested[name] = true
		}

		for _, name := range order {
			if _, found, _ := directive.FromDoc(decls[name].doc); found {
				requested[name] = true
			}
		}
	}

	var missing []string
	for name := range requested {
		if _, ok := decls[name]; !ok {
			missing = append(missing, name)
		}
	}

	sort.Strings(missing)

	for _, name := range missing {
		var hints []string
		for _, alt := range suggest.Closest(name, order, 3) {
			hints = append(hints, "did you mean "+alt+"?")
		}

		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeNotEnumeration,
			Message:     fmt.Sprintf("type %s is not declared in package %s", name, result.Path),
			Enum:        name,
			Suggestions: hints,
		})
	}

	if len(requested) == 0 {
		result.Diagnostics.AddError(diagnostic.CodeMissingFamily,
			"no type in package "+result.Path+" carries a "+directive.Family+" directive", "", "")
	}

	var targets []string
	for _, name := range order {
		if requested[name] {
			targets = append(targets, name)
		}
	}

	return targets
}

// analyzeEnum validates one enumeration. It returns nil after reporting
// errors.
func (a *Analyzer) analyzeEnum(pkg *packages.Package, files []*ast.File, decl typeDecl, result *Package) *Enum {
	name := decl.spec.Name.Name
	pos := a.fset.Position(decl.spec.Pos())

	attr, ok := a.resolveAttribute(decl, result)
	if !ok {
		return nil
	}

	report := func(code, msg string) *Enum {
		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     code,
			Message:  msg,
			Enum:     name,
			Pos:      pos.String(),
		})

		return nil
	}

	if decl.spec.Assign.IsValid() {
		return report(diagnostic.CodeNotEnumeration, "type alias cannot be an enumeration")
	}

	if decl.spec.TypeParams != nil {
		return report(diagnostic.CodeNotEnumeration, "generic type cannot be an enumeration")
	}

	obj, ok := pkg.TypesInfo.Defs[decl.spec.Name].(*types.TypeName)
	if !ok {
		return report(diagnostic.CodeNotEnumeration, "not a type name")
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return report(diagnostic.CodeNotEnumeration, "not a defined type")
	}

	kind := kindOf(named.Underlying())
	if kind == KindUnknown {
		return report(diagnostic.CodeNotEnumeration,
			fmt.Sprintf("underlying type %s is not an integer or string type", named.Underlying()))
	}

	enum := &Enum{
		ID:        EnumID{PkgPath: result.Path, Name: name},
		Kind:      kind,
		Attribute: attr,
		Pos:       pos,
	}

	if !a.collectVariants(pkg, files, named, enum, result) {
		return nil
	}

	if len(enum.Variants) == 0 {
		return report(diagnostic.CodeNoVariants, "no constants of type "+name+" are declared")
	}

	return enum
}

// resolveAttribute merges the directive and the externally supplied
// attribute of one type.
func (a *Analyzer) resolveAttribute(decl typeDecl, result *Package) (directive.Attribute, bool) {
	name := decl.spec.Name.Name
	pos := a.fset.Position(decl.spec.Pos()).String()

	attr, found, err := directive.FromDoc(decl.doc)
	if err != nil {
		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     attributeCode(err),
			Message:  err.Error(),
			Enum:     name,
			Pos:      pos,
		})

		return directive.Attribute{}, false
	}

	external, hasExternal := a.config.Attributes[name]

	switch {
	case found && hasExternal && !attr.Equal(external):
		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     diagnostic.CodeConfigConflict,
			Message: fmt.Sprintf("directive declares family %s but config declares %s",
				attr.Family, external.Family),
			Enum:        name,
			Pos:         pos,
			Suggestions: []string{"remove the entry from the config file or make both agree"},
		})

		return directive.Attribute{}, false

	case !found && !hasExternal:
		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeMissingFamily,
			Message:     "missing " + directive.Family + " directive",
			Enum:        name,
			Pos:         pos,
			Suggestions: []string{directive.Family + " " + name + "Const"},
		})

		return directive.Attribute{}, false

	case !found:
		attr = external
	}

	if err := attr.Validate(); err != nil {
		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticError,
			Code:     attributeCode(err),
			Message:  err.Error(),
			Enum:     name,
			Pos:      pos,
		})

		return directive.Attribute{}, false
	}

	return attr, true
}

// collectVariants gathers the package-level constants of the enumeration in
// declaration order and rejects aliased values.
func (a *Analyzer) collectVariants(pkg *packages.Package, files []*ast.File, named *types.Named, enum *Enum, result *Package) bool {
	byValue := make(map[string]string)
	ok := true

	for _, file := range files {
		for _, decl := range file.Decls {
			gen, isGen := decl.(*ast.GenDecl)
			if !isGen || gen.Tok != token.CONST {
				continue
			}

			for _, spec := range gen.Specs {
				vs := spec.(*ast.ValueSpec)

				for _, ident := range vs.Names {
					if ident.Name == "_" {
						continue
					}

					c, isConst := pkg.TypesInfo.Defs[ident].(*types.Const)
					if !isConst || !types.Identical(c.Type(), named) {
						continue
					}

					pos := a.fset.Position(ident.Pos())

					if c.Val().Kind() == constant.Unknown {
						result.Diagnostics.Add(diagnostic.Diagnostic{
							Severity: diagnostic.DiagnosticError,
							Code:     diagnostic.CodeNotEnumeration,
							Message:  "value of " + ident.Name + " is unknown: " + a.typeErrorAt(pos.Filename, pos.Line),
							Enum:     enum.ID.Name,
							Variant:  ident.Name,
							Pos:      pos.String(),
						})

						ok = false

						continue
					}

					value := c.Val().ExactString()

					if prev, dup := byValue[value]; dup {
						result.Diagnostics.Add(diagnostic.Diagnostic{
							Severity: diagnostic.DiagnosticError,
							Code:     diagnostic.CodeVariantNotDistinct,
							Message: fmt.Sprintf("expected fieldless enum variant, found %s aliasing %s (value %s)",
								ident.Name, prev, value),
							Enum:        enum.ID.Name,
							Variant:     ident.Name,
							Pos:         pos.String(),
							Suggestions: []string{"give " + ident.Name + " a distinct value or declare it with another type"},
						})

						ok = false

						continue
					}

					byValue[value] = ident.Name
					enum.Variants = append(enum.Variants, Variant{
						Name:    ident.Name,
						Ordinal: len(enum.Variants),
						Value:   value,
						Pos:     pos,
					})
				}
			}
		}
	}

	return ok
}

// ImportedNames are the package names the generated file imports.
var ImportedNames = []string{"fmt", "optconst"}

// checkImportNames reports package-level declarations that the imports of
// the generated file would clash with.
func (a *Analyzer) checkImportNames(pkg *packages.Package, result *Package) bool {
	ok := true

	for _, name := range ImportedNames {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil || pkg.PkgPath == name {
			continue
		}

		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeNameCollision,
			Message:     fmt.Sprintf("declaration %s at %s collides with an import of the generated file", name, a.fset.Position(obj.Pos())),
			Suggestions: []string{"rename " + name},
		})

		ok = false
	}

	return ok
}

// checkCollisions reports generated identifiers that already exist in the
// package, on the enumeration type, or in an earlier enumeration of this run.
func (a *Analyzer) checkCollisions(pkg *packages.Package, enum *Enum, taken map[string]string, result *Package) bool {
	name := enum.ID.Name
	ok := true

	collide := func(ident, where string) {
		result.Diagnostics.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticError,
			Code:        diagnostic.CodeNameCollision,
			Message:     fmt.Sprintf("generated identifier %s collides with %s", ident, where),
			Enum:        name,
			Pos:         enum.Pos.String(),
			Suggestions: []string{"choose another family name"},
		})

		ok = false
	}

	scope := pkg.Types.Scope()
	local := make(map[string]bool)

	for _, ident := range enum.Names().TopLevel() {
		switch {
		case local[ident]:
			collide(ident, "another identifier generated for "+name)
		case taken[ident] != "":
			collide(ident, "an identifier generated for "+taken[ident])
		case scope.Lookup(ident) != nil:
			collide(ident, "an existing declaration at "+a.fset.Position(scope.Lookup(ident).Pos()).String())
		}

		local[ident] = true
	}

	named := scope.Lookup(name).Type()
	for _, method := range DynamicMethods {
		if obj, _, _ := types.LookupFieldOrMethod(named, true, pkg.Types, method); obj != nil {
			collide(method, "method "+name+"."+method+" at "+a.fset.Position(obj.Pos()).String())
		}
	}

	if ok {
		for ident := range local {
			taken[ident] = name
		}
	}

	return ok
}

// typeErrorAt returns the first type error reported on line of file, or the
// first type error of the package.
func (a *Analyzer) typeErrorAt(file string, line int) string {
	prefix := fmt.Sprintf("%s:%d:", file, line)

	for _, e := range a.typeErrs {
		if strings.HasPrefix(e.Pos, prefix) {
			return e.Msg
		}
	}

	if len(a.typeErrs) > 0 {
		return a.typeErrs[0].Error()
	}

	return "constant could not be evaluated"
}

func attributeCode(err error) string {
	switch {
	case errors.Is(err, directive.ErrMissingFamily):
		return diagnostic.CodeMissingFamily
	case errors.Is(err, directive.ErrMalformedAnnotation):
		return diagnostic.CodeMalformedAnnotate
	default:
		return diagnostic.CodeMalformedFamily
	}
}

func kindOf(t types.Type) Kind {
	basic, ok := t.(*types.Basic)
	if !ok {
		return KindUnknown
	}

	info := basic.Info()

	switch {
	case info&types.IsInteger != 0 && info&types.IsUnsigned != 0:
		return KindUnsigned
	case info&types.IsInteger != 0:
		return KindSigned
	case info&types.IsString != 0:
		return KindString
	default:
		return KindUnknown
	}
}

// sortedFiles returns the package syntax ordered by file name, which fixes
// the declaration order across files.
func sortedFiles(pkg *packages.Package) []*ast.File {
	files := slices.Clone(pkg.Syntax)

	sort.SliceStable(files, func(i, j int) bool {
		return pkg.Fset.Position(files[i].Package).Filename < pkg.Fset.Position(files[j].Package).Filename
	})

	return files
}
