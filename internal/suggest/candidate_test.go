package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Parallel()

	ranked := Rank("Colour", []string{"Suit", "Color", "Colors", "Colour"})

	require.Len(t, ranked, 3, "the queried name itself is skipped")
	assert.Equal(t, []string{"Color", "Colors", "Suit"}, ranked.Names())
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
}

func TestRank_TiesByName(t *testing.T) {
	t.Parallel()

	ranked := Rank("ab", []string{"ax", "aa", "ay"})

	assert.Equal(t, []string{"aa", "ax", "ay"}, ranked.Names())
}

func TestCandidateList_Top(t *testing.T) {
	t.Parallel()

	list := CandidateList{{Name: "a", Score: 0.9}, {Name: "b", Score: 0.8}}

	assert.Len(t, list.Top(1), 1)
	assert.Len(t, list.Top(5), 2)
}

func TestCandidateList_AboveThreshold(t *testing.T) {
	t.Parallel()

	list := CandidateList{{Name: "a", Score: 0.9}, {Name: "b", Score: 0.6}, {Name: "c", Score: 0.2}}

	assert.Equal(t, []string{"a", "b"}, list.AboveThreshold(0.6).Names())
	assert.Empty(t, list.AboveThreshold(0.95))
}

func TestClosest(t *testing.T) {
	t.Parallel()

	known := []string{"Color", "Direction", "Suit"}

	assert.Equal(t, []string{"Color"}, Closest("Colour", known, 3))
	assert.Equal(t, []string{"Direction"}, Closest("direction", known, 3))
	assert.Empty(t, Closest("Weekday", known, 3))
	assert.Equal(t, []string{"family"}, Closest("famly", []string{"family", "annotate"}, 1))
}
