// Package registry holds the two curated inputs of the generator: the
// Lexer Registry, which correlates a catalog display name with a Lexilla
// lexer name, and the Keyword Catalog, which carries up to two curated
// keyword lists per lexer.
//
// Both are immutable values. Build them once (DefaultRegistry,
// DefaultKeywords or the New* constructors) and pass them to the stages
// that need them.
package registry
