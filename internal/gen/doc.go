// Package gen renders a resolved plan into the C lookup-table artifacts.
//
// Generation uses text/template over pre-escaped view data, so every
// string that reaches a template is already a valid C literal body.
//
// Artifacts:
//   - header: LanguageType enum, struct typedefs, externs and counts
//   - source: keyword constants, extension and lexer-config tables,
//     the file-dialog filter string and the name lookup functions
//
// WriteFiles replaces both artifacts together or not at all.
package gen
