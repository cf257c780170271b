// Package suggest ranks known identifiers by similarity to a misspelled one,
// for "did you mean" hints in diagnostics.
//
// Key functions:
//   - NormalizeIdent: folds case and CamelCase boundaries for comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: scores every candidate against a name
//   - Closest: the candidates worth suggesting
package suggest
