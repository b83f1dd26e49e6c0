// Package plan provides the resolution step that turns the final language
// and extension tables into a ResolvedPlan consumed by code generation.
//
// Resolution:
//  1. Sanitize every display name into an identifier
//  2. Reject identifier collisions
//  3. Order the enum: base languages first, then the rest by display name
//  4. Sort extension mappings by extension and lexer configs by name
//  5. Attach curated keyword lists, noting lexers without any
//  6. Group file-dialog filters by category
package plan
