package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// painter colours diagnostics when they go to a terminal.
type painter struct {
	enabled bool
}

func newPainter(w io.Writer) painter {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return painter{}
	}

	f, ok := w.(*os.File)
	if !ok {
		return painter{}
	}

	fd := f.Fd()

	return painter{enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

func (p painter) red(s string) string {
	return p.wrap(ansiRed, s)
}

func (p painter) yellow(s string) string {
	return p.wrap(ansiYellow, s)
}

func (p painter) wrap(code, s string) string {
	if !p.enabled {
		return s
	}

	return code + s + ansiReset
}
