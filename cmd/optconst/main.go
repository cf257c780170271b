// Package main provides the CLI entrypoint for optconst.
//
// optconst generates const marker families for enumerations. It is meant to
// be run by go generate:
//
//	//go:generate go run optconst/cmd/optconst
//
// Usage:
//
//	optconst [-type T1,T2] [-config file] [-output name] [-tags t1,t2] [-dry-run] [-v] [dir|pattern]
//
// Without -type every type carrying an //optconst:family directive, or listed
// in the config file, is processed. Generation is all-or-nothing: any error
// diagnostic aborts before a file is written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"optconst/internal/analyze"
	"optconst/internal/config"
	"optconst/internal/diagnostic"
	"optconst/internal/gen"
)

// debugDirEnv names the directory receiving unformatted output when
// formatting fails.
const debugDirEnv = "OPTCONST_DEBUG_DIR"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the parsed command line.
type options struct {
	types   string
	config  string
	output  string
	tags    string
	dryRun  bool
	verbose bool
	target  string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("optconst", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.types, "type", "", "comma-separated list of enumeration type names; default: every annotated type")
	fs.StringVar(&opts.config, "config", "", "YAML or TOML file declaring enumeration attributes")
	fs.StringVar(&opts.output, "output", "", "output file name; default <pkg>_optconst.go")
	fs.StringVar(&opts.tags, "tags", "", "comma-separated list of build tags to apply")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print the generated source instead of writing it")
	fs.BoolVar(&opts.verbose, "v", false, "report each enumeration")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: optconst [flags] [dir|pattern]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.output != "" {
		if err := config.CheckOutput(opts.output); err != nil {
			return nil, err
		}
	}

	switch fs.NArg() {
	case 0:
		opts.target = "."
	case 1:
		opts.target = fs.Arg(0)
	default:
		return nil, fmt.Errorf("want at most one directory or pattern, got %d", fs.NArg())
	}

	return opts, nil
}

// analyzerConfig translates the options into an analyzer configuration.
func (o *options) analyzerConfig() (analyze.Config, error) {
	cfg := analyze.DefaultConfig()
	cfg.Types = splitList(o.types)
	cfg.BuildTags = splitList(o.tags)

	if info, err := os.Stat(o.target); err == nil && info.IsDir() {
		cfg.Dir = o.target
	} else {
		cfg.Patterns = []string{o.target}
	}

	if o.config != "" {
		file, err := config.LoadFile(o.config)
		if err != nil {
			return cfg, err
		}

		cfg.Attributes = file.Attributes()
		cfg.Output = file.Output
	}

	if o.output != "" {
		cfg.Output = o.output
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "optconst: ", 0)
	paint := newPainter(stderr)

	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	if err != nil {
		logger.Print(paint.red(err.Error()))
		return 2
	}

	cfg, err := opts.analyzerConfig()
	if err != nil {
		logger.Print(paint.red(err.Error()))
		return 1
	}

	pkg, err := analyze.NewAnalyzer(cfg).Load()
	if pkg != nil {
		report(logger, paint, pkg.Diagnostics, opts.verbose)
	}

	if err != nil {
		if pkg == nil {
			logger.Print(paint.red(err.Error()))
		}

		return 1
	}

	genConfig := gen.DefaultGeneratorConfig()
	genConfig.DebugDir = os.Getenv(debugDirEnv)

	files, err := gen.NewGenerator(genConfig).Generate(pkg)
	if err != nil {
		logger.Print(paint.red(err.Error()))
		return 1
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Fprintf(stdout, "// %s\n%s", f.Filename, f.Content)
		}

		return 0
	}

	if err := gen.WriteFiles(files, pkg.Dir); err != nil {
		logger.Print(paint.red(err.Error()))
		return 1
	}

	if opts.verbose {
		for _, f := range files {
			logger.Printf("wrote %s (%d enumerations)", f.Filename, len(pkg.Enums))
		}
	}

	return 0
}

// report prints errors and warnings, plus infos in verbose mode, one per line.
func report(logger *log.Logger, paint painter, d diagnostic.Diagnostics, verbose bool) {
	for _, e := range d.Errors {
		logger.Print(paint.red(e.String()))

		for _, s := range e.Suggestions {
			logger.Print("\tsuggestion: " + s)
		}
	}

	for _, w := range d.Warnings {
		logger.Print(paint.yellow("warning: " + w.String()))
	}

	if verbose {
		for _, i := range d.Infos {
			logger.Print(i.String())
		}
	}
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
