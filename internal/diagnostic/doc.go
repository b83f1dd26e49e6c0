// Package diagnostic provides structured findings collected while the
// lexer tables are built.
//
// Findings that do not stop a run:
//   - Catalog languages with no registry entry (info)
//   - Registry names missing from the catalog, with close-name suggestions
//   - Extensions claimed by more than one language (warning)
//   - Lexers with no curated keywords (info)
//
// Findings that fail a run are recorded as errors, e.g. identifier
// collisions and a declared config count that disagrees with the data.
package diagnostic
