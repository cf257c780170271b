package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optconst/internal/analyze"
	"optconst/internal/testmod"
)

const colorsSrc = `package enums

//optconst:family ColorConst
type Color int

const (
	Red Color = iota
	Green
)
`

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	root := testmod.Write(t, map[string]string{"colors.go": colorsSrc})

	code, stdout, stderr := runCLI("-dry-run", root)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "// enums_optconst.go\n"+analyze.GeneratedHeader)
	assert.Contains(t, stdout, "func TryIntoColorConst[D ColorConstTag](value Color) (ColorConst[D], error) {")
	assert.NoFileExists(t, filepath.Join(root, "enums_optconst.go"))
}

func TestRun_Writes(t *testing.T) {
	t.Parallel()

	root := testmod.Write(t, map[string]string{"colors.go": colorsSrc})

	code, _, stderr := runCLI("-v", root)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stderr, "optconst: [Color]: [OC201] 2 signed variants, family ColorConst")
	assert.Contains(t, stderr, "optconst: wrote enums_optconst.go")

	first, err := os.ReadFile(filepath.Join(root, "enums_optconst.go"))
	require.NoError(t, err)

	code, _, stderr = runCLI(root)
	require.Equal(t, 0, code, stderr)

	second, err := os.ReadFile(filepath.Join(root, "enums_optconst.go"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRun_RegeneratesWithUses(t *testing.T) {
	t.Parallel()

	root := testmod.Write(t, map[string]string{"colors.go": colorsSrc})

	code, _, stderr := runCLI(root)
	require.Equal(t, 0, code, stderr)

	first, err := os.ReadFile(filepath.Join(root, "enums_optconst.go"))
	require.NoError(t, err)

	use := "package enums\n\nvar Default ColorConstRed\n\nfunc green(c Color) (ColorConstGreen, error) {\n\treturn TryIntoColorConst[ColorConstTag1](c)\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "use.go"), []byte(use), 0o644))

	code, _, stderr = runCLI(root)
	require.Equal(t, 0, code, stderr)

	second, err := os.ReadFile(filepath.Join(root, "enums_optconst.go"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestRun_ConfigAndOutput(t *testing.T) {
	t.Parallel()

	root := testmod.Write(t, map[string]string{
		"suit.go": "package enums\n\ntype Suit int\n\nconst (\n\tClubs Suit = iota\n\tHearts\n)\n",
		"optconst.yaml": `version: "1"
output: from_config.go
enums:
  - type: Suit
    family: SuitConst
`,
	})

	code, _, stderr := runCLI("-config", filepath.Join(root, "optconst.yaml"), "-output", "suit_gen.go", root)
	require.Equal(t, 0, code, stderr)

	assert.FileExists(t, filepath.Join(root, "suit_gen.go"))
	assert.NoFileExists(t, filepath.Join(root, "from_config.go"))
}

func TestRun_Failures(t *testing.T) {
	t.Parallel()

	root := testmod.Write(t, map[string]string{
		"colors.go": "package enums\n\n//optconst:family Color Const\ntype Color int\n\nconst Red Color = 0\n",
	})

	code, _, stderr := runCLI(root)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[OC002]")
	assert.NoFileExists(t, filepath.Join(root, "enums_optconst.go"))

	code, _, stderr = runCLI("-type", "Colour", root)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[OC004]")

	code, _, stderr = runCLI("-config", filepath.Join(root, "missing.yaml"), root)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing.yaml")

	code, _, _ = runCLI("-no-such-flag")
	assert.Equal(t, 2, code)

	code, _, stderr = runCLI("-output", "../escaped.go", root)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "bare .go file name")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(root), "escaped.go"))

	code, _, _ = runCLI("-output", "colors_test.go", root)
	assert.Equal(t, 2, code)

	code, _, stderr = runCLI("a", "b")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "want at most one")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI("-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "Usage: optconst")
	assert.Contains(t, stderr, "-dry-run")
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"Color", "Suit"}, splitList(" Color, ,Suit "))
}

func TestPainter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, "plain", newPainter(&buf).red("plain"))

	p := painter{enabled: true}
	assert.Equal(t, "\x1b[31mbad\x1b[0m", p.red("bad"))
	assert.Equal(t, "\x1b[33mmeh\x1b[0m", p.yellow("meh"))
}
