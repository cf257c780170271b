// Package config loads optional generator declarations from YAML or TOML.
//
// A config file supplies the same attribute the doc-comment directives do,
// for enumerations whose source should stay free of generator comments:
//
//	version: "1"
//	output: color_optconst.go
//	enums:
//	  - type: Color
//	    family: ColorConst
//	    annotations:
//	      - "//nolint:recvcheck"
//
// The TOML form uses the same keys:
//
//	version = "1"
//
//	[[enums]]
//	type = "Color"
//	family = "ColorConst"
//
// When both a directive and the config describe one type, they must agree.
package config
