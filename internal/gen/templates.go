package gen

import "text/template"

var familyTemplate = template.Must(template.New("family").Parse(`{{.Header}}

package {{.PackageName}}

import (
{{range .Imports}}{{if .Group}}
{{end}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{$q := .Qualifier}}{{$doc := .GenerateComments}}
{{range .Enums}}{{$e := .}}
{{if $doc}}// {{.Constraint}} is the closed set of tags indexing {{.Family}}.
{{end}}type {{.Constraint}} interface {
	{{range $i, $v := .Variants}}{{if $i}} | {{end}}{{$v.Tag}}{{end}}
	{{.Accessor}}() {{.Type}}
}
{{range .Variants}}
{{if $doc}}// {{.Tag}} indexes {{.Name}}.
{{end}}type {{.Tag}} struct{}

func ({{.Tag}}) {{$e.Accessor}}() {{$e.Type}} { return {{.Name}} }
{{end}}
{{if $doc}}// {{.Family}} is the const marker family of {{.Type}}. {{.Family}}[{{.TypeParam}}] stands
// for the variant indexed by {{.TypeParam}}.
{{if .Annotations}}//
{{end}}{{end}}{{range .Annotations}}{{.}}
{{end}}type {{.Family}}[{{.TypeParam}} {{.Constraint}}] struct{}

type (
{{range .Variants}}{{if $doc}}	// {{.Alias}} stands for {{.Name}}.
{{end}}	{{.Alias}} = {{$e.Family}}[{{.Tag}}]
{{end}})

var (
{{range .Variants}}	_ {{$q}}Const[{{$e.Type}}] = {{.Alias}}{}
{{end}}	_ = {{$q}}Check[{{.Type}}, {{.Type}}]
{{range .Variants}}	_ = {{$q}}Check[{{.Alias}}, {{$e.Type}}]
{{end}})

{{if $doc}}// ConstValue implements {{$q}}Const[{{.Type}}].
{{end}}func ({{.Family}}[{{.TypeParam}}]) ConstValue() {{.Type}} {
	var tag {{.TypeParam}}
	return tag.{{.Accessor}}()
}

{{if $doc}}// MaybeConst always reports the marker's variant.
{{end}}func (c {{.Family}}[{{.TypeParam}}]) MaybeConst() ({{.Type}}, bool) {
	return c.ConstValue(), true
}

{{if $doc}}// IntoValue returns the marker's variant.
{{end}}func (c {{.Family}}[{{.TypeParam}}]) IntoValue() {{.Type}} {
	return c.ConstValue()
}

{{if $doc}}// TryFromValue succeeds only when value is the marker's variant.
{{end}}func (c {{.Family}}[{{.TypeParam}}]) TryFromValue(value {{.Type}}) ({{.Family}}[{{.TypeParam}}], error) {
	if {{.Ordinal}}(value) != {{.Ordinal}}(c.ConstValue()) {
		return c, {{$q}}Mismatch(value, c.ConstValue())
	}

	return c, nil
}

func (c {{.Family}}[{{.TypeParam}}]) String() string {
	return fmt.Sprintf("{{.Family}}[%v]", c.ConstValue())
}

{{if $doc}}// MaybeConst reports that {{.Type}} is not a const marker.
{{end}}func ({{.Type}}) MaybeConst() ({{.Type}}, bool) {
	var zero {{.Type}}
	return zero, false
}

{{if $doc}}// IntoValue returns {{.Receiver}} unchanged.
{{end}}func ({{.Receiver}} {{.Type}}) IntoValue() {{.Type}} {
	return {{.Receiver}}
}

{{if $doc}}// TryFromValue accepts every {{.Type}}.
{{end}}func ({{.Type}}) TryFromValue(value {{.Type}}) ({{.Type}}, error) {
	return value, nil
}

{{if $doc}}// {{.Convert}} converts value into the {{.Family}} marker indexed by {{.TypeParam}}.
// A value of another variant yields a *{{$q}}MismatchError holding value.
{{end}}func {{.Convert}}[{{.TypeParam}} {{.Constraint}}](value {{.Type}}) ({{.Family}}[{{.TypeParam}}], error) {
	return {{.Family}}[{{.TypeParam}}]{}.TryFromValue(value)
}

{{if $doc}}// {{.Ordinal}} returns the declaration index of {{.Param}}, or -1.
{{end}}func {{.Ordinal}}({{.Param}} {{.Type}}) int {
	switch {{.Param}} {
{{range .Variants}}	case {{.Name}}:
		return {{.Ordinal}}
{{end}}	default:
		return -1
	}
}
{{end}}`))
