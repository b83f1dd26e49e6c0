// Package lexers enumerates the Lexilla lexers present in a source tree
// and checks the Lexer Registry against them.
package lexers
