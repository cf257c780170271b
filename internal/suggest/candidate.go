package suggest

import "sort"

// DefaultThreshold is the similarity a candidate needs to be suggested.
const DefaultThreshold = 0.6

// Candidate is a known identifier scored against a queried one.
type Candidate struct {
	Name  string
	Score float64 // IdentSimilarity in [0, 1]
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against name. The result is sorted by score
// (descending), ties broken by name, so it is deterministic.
func Rank(name string, known []string) CandidateList {
	out := make(CandidateList, 0, len(known))

	for _, k := range known {
		if k == name {
			continue
		}

		out = append(out, Candidate{Name: k, Score: IdentSimilarity(name, k)})
	}

	sort.Sort(out)

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less orders by score descending, then by name.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, 0, len(c))
	for _, cand := range c {
		names = append(names, cand.Name)
	}

	return names
}

// Closest returns up to n known names similar enough to name to be worth
// suggesting, best first.
func Closest(name string, known []string, n int) []string {
	return Rank(name, known).AboveThreshold(DefaultThreshold).Top(n).Names()
}
