// Package reconcile joins the external language catalog against the Lexer
// Registry.
package reconcile
