package gen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"optconst/internal/analyze"
	"optconst/internal/gen"
	"optconst/internal/testmod"
)

const runtimeImport = testmod.ModulePath + "/optconst"

// writeModule writes a module holding files plus a copy of the runtime
// package under optconst/.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	sources, err := filepath.Glob(filepath.Join("..", "..", "*.go"))
	require.NoError(t, err)

	all := make(map[string]string, len(files)+len(sources))
	for name, content := range files {
		all[name] = content
	}

	for _, src := range sources {
		if strings.HasSuffix(src, "_test.go") {
			continue
		}

		b, err := os.ReadFile(src)
		require.NoError(t, err)

		all["optconst/"+filepath.Base(src)] = string(b)
	}

	return testmod.Write(t, all)
}

// generate runs the analyzer and the generator over root and writes the
// result.
func generate(t *testing.T, root string) []byte {
	t.Helper()

	pkg, err := analyze.NewAnalyzer(analyze.Config{Dir: root, Env: testmod.Env()}).Load()
	require.NoError(t, err)

	config := gen.DefaultGeneratorConfig()
	config.RuntimeImport = runtimeImport

	files, err := gen.NewGenerator(config).Generate(pkg)
	require.NoError(t, err, spew.Sdump(pkg.Enums))
	require.NoError(t, gen.WriteFiles(files, pkg.Dir))

	return files[0].Content
}

// typeCheck loads the package at root and fails on any error.
func typeCheck(t *testing.T, root string) {
	t.Helper()

	pkgs, err := packages.Load(&packages.Config{
		Mode: analyze.LoadMode,
		Dir:  root,
		Env:  testmod.Env(),
	}, ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	for _, e := range pkgs[0].Errors {
		t.Errorf("type check: %v", e)
	}
}

func TestGenerate_CompilesAndRegenerates(t *testing.T) {
	t.Parallel()

	root := writeModule(t, map[string]string{
		"direction.go": `package enums

// Direction is a compass point.
//
//optconst:family DirectionConst
type Direction string

const (
	North Direction = "north"
	East  Direction = "east"
	South Direction = "south"
	West  Direction = "west"
)
`,
		"level.go": `package enums

//optconst:annotate //nolint:unused
//optconst:family levelConst
type level uint8

const (
	low level = iota + 1
	high
)
`,
	})

	first := generate(t, root)
	typeCheck(t, root)

	second := generate(t, root)
	assert.Equal(t, string(first), string(second), "generation is idempotent")

	content := string(first)
	assert.Contains(t, content, "func TryIntoDirectionConst[D DirectionConstTag](value Direction) (DirectionConst[D], error) {")
	assert.Contains(t, content, "func tryIntoLevelConst[D levelConstTag](value level) (levelConst[D], error) {")
	assert.Less(t, strings.Index(content, "DirectionConstTag0"), strings.Index(content, "levelConstTag0"),
		"enumerations follow file order")
}

func TestGenerate_GeneratedAPI(t *testing.T) {
	t.Parallel()

	root := writeModule(t, map[string]string{
		"suit.go": `package enums

//optconst:family SuitConst
type Suit int8

const (
	Clubs Suit = iota - 1
	Diamonds
	Hearts
)
`,
	})

	first := generate(t, root)

	use := `package enums

import (
	"errors"

	"` + runtimeImport + `"
)

func use() error {
	if _, err := TryIntoSuitConst[SuitConstTag0](Clubs); err != nil {
		return err
	}

	_, err := TryIntoSuitConst[SuitConstTag2](Diamonds)
	if !errors.Is(err, optconst.ErrMismatch) {
		return errors.New("want mismatch")
	}

	if v, _ := optconst.Rejected[Suit](err); v != Diamonds {
		return errors.New("want Diamonds back")
	}

	if optconst.ConstValue[SuitConstHearts, Suit]() != Hearts {
		return errors.New("want Hearts")
	}

	_, err = optconst.TryFromAnother[SuitConstClubs, Suit](SuitConstDiamonds{})

	return err
}

var _ = use
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "use.go"), []byte(use), 0o644))

	typeCheck(t, root)

	second := generate(t, root)
	assert.Equal(t, string(first), string(second), "uses of generated names do not block regeneration")
	typeCheck(t, root)
}

func TestGenerate_ExampleUpToDate(t *testing.T) {
	t.Parallel()

	dir := filepath.Join("..", "..", "examples", "color")

	pkg, err := analyze.NewAnalyzer(analyze.Config{Dir: dir}).Load()
	require.NoError(t, err)

	files, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(pkg)
	require.NoError(t, err)
	require.Len(t, files, 1)

	checkedIn, err := os.ReadFile(filepath.Join(dir, files[0].Filename))
	require.NoError(t, err)

	assert.Equal(t, strings.Fields(string(checkedIn)), strings.Fields(string(files[0].Content)),
		"examples/color is stale: run go generate ./examples/color")
}
