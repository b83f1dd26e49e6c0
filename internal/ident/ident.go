package ident

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Identifier is a C enumerator name such as LANG_PYTHON.
type Identifier string

// Prefix is the namespace tag of every identifier.
const Prefix = "LANG_"

// Count is the terminal sentinel of the enumeration.
const Count Identifier = Prefix + "COUNT"

// BaseLanguage is one of the fixed leading enum entries.
type BaseLanguage struct {
	Ident Identifier
	// Name is the display string returned by the generated name lookup.
	Name string
}

var baseLanguages = []BaseLanguage{
	{Ident: "LANG_NONE", Name: "Plain Text"},
	{Ident: "LANG_C", Name: "C"},
	{Ident: "LANG_CPP", Name: "C++"},
	{Ident: "LANG_PYTHON", Name: "Python"},
	{Ident: "LANG_JAVASCRIPT", Name: "JavaScript"},
	{Ident: "LANG_HTML", Name: "HTML"},
	{Ident: "LANG_CSS", Name: "CSS"},
	{Ident: "LANG_XML", Name: "XML"},
	{Ident: "LANG_JSON", Name: "JSON"},
	{Ident: "LANG_MARKDOWN", Name: "Markdown"},
	{Ident: "LANG_BATCH", Name: "Batch"},
	{Ident: "LANG_SQL", Name: "SQL"},
}

// BaseLanguages returns the fixed leading enum entries in order.
func BaseLanguages() []BaseLanguage {
	out := make([]BaseLanguage, len(baseLanguages))
	copy(out, baseLanguages)

	return out
}

// Derive applies the derivation rule to name: upper-case it, map ' ' and
// '-' to '_', '+' to 'P', '#' to 'S', any other byte outside [A-Z0-9_] to
// '_', and prepend Prefix.
func Derive(name string) Identifier {
	var b strings.Builder

	b.Grow(len(Prefix) + len(name))
	b.WriteString(Prefix)

	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}

		switch {
		case c == '+':
			b.WriteByte('P')
		case c == '#':
			b.WriteByte('S')
		case 'A' <= c && c <= 'Z', '0' <= c && c <= '9', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}

	return Identifier(b.String())
}

const defaultCacheSize = 1024

// Sanitizer maps display names to identifiers, resolving base language
// names to their fixed identifiers first.
type Sanitizer struct {
	ordered []BaseLanguage
	base    map[string]Identifier
	cache   *lru.Cache[string, Identifier]
}

// NewSanitizer returns a Sanitizer over the given base languages.
func NewSanitizer(base []BaseLanguage) *Sanitizer {
	s := &Sanitizer{
		ordered: append([]BaseLanguage(nil), base...),
		base:    make(map[string]Identifier, len(base)),
	}
	for _, b := range base {
		s.base[b.Name] = b.Ident
	}

	// lru.New only fails for a non-positive size.
	if cache, err := lru.New[string, Identifier](defaultCacheSize); err == nil {
		s.cache = cache
	}

	return s
}

// Default returns a Sanitizer over BaseLanguages.
func Default() *Sanitizer {
	return NewSanitizer(baseLanguages)
}

// Sanitize returns the identifier for a display name.
func (s *Sanitizer) Sanitize(name string) Identifier {
	if id, ok := s.base[name]; ok {
		return id
	}

	if s.cache != nil {
		if id, ok := s.cache.Get(name); ok {
			return id
		}
	}

	id := Derive(name)
	if s.cache != nil {
		s.cache.Add(name, id)
	}

	return id
}

// IsBase reports whether name is a base language display name.
func (s *Sanitizer) IsBase(name string) bool {
	_, ok := s.base[name]

	return ok
}

// Base returns the sanitizer's base languages in enum order.
func (s *Sanitizer) Base() []BaseLanguage {
	return append([]BaseLanguage(nil), s.ordered...)
}

// IsBaseIdent reports whether id is reserved by a base language.
func (s *Sanitizer) IsBaseIdent(id Identifier) bool {
	for _, b := range s.ordered {
		if b.Ident == id {
			return true
		}
	}

	return false
}
