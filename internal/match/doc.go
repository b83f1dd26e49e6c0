// Package match provides name normalization, Levenshtein distance and
// close-name suggestions used when a registry display name has no
// counterpart in the catalog.
//
// Key functions:
//   - NormalizeName: case- and separator-insensitive form of a display name
//   - Levenshtein: edit distance over runes
//   - Suggest: ranks candidate names by normalized similarity
package match
