// Package ident derives the C enumeration identifiers of the LanguageType
// enum from catalog display names.
//
// The derivation is total and stable:
//
//	"C++"          -> LANG_CPP
//	"C#"           -> LANG_CS
//	"Objective-C"  -> LANG_OBJECTIVE_C
//	"Standard ML"  -> LANG_STANDARD_ML
//	"PL/SQL"       -> LANG_PL_SQL
//
// Twelve base languages carry fixed identifiers and always lead the enum,
// in the order given by BaseLanguages. LANG_COUNT closes the enum.
//
// Sanitizer keeps derived identifiers in a bounded LRU cache. The cache
// only saves repeated derivations; Sanitize returns Derive's result whether
// or not the name is cached or has been evicted.
package ident
