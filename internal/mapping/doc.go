// Package mapping provides the manual override rules that correct the
// automatic catalog reconciliation, their YAML schema, and the engine that
// applies them.
//
// Overrides always win over the catalog. The built-in set (DefaultRules)
// can be extended with an overrides file:
//
//	version: "1"
//	languages:
//	  # languages the catalog does not carry, added unconditionally
//	  - name: Windows Registry
//	    lexer: registry
//	    extensions: .reg
//	extensions:
//	  # extensions forced onto a language already in the table
//	  - extension: [.ts, .tsx]
//	    language: TypeScript
//
// # Order of application
//
//  1. "languages" additions insert the language and its extensions.
//  2. "extensions" rules reassign extensions to a language that is present
//     in the language table, replacing whatever the catalog chose. Rules
//     whose language is absent are skipped with an info diagnostic.
//
// Within each list later rules win. Applying the same rules twice changes
// nothing the second time.
package mapping
