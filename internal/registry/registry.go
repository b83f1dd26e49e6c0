package registry

import (
	"slices"

	"lexmap-generator/internal/common"
)

// LexerID is the lower-case name of a Lexilla lexer, e.g. "cpp" or "python".
type LexerID string

// Entry pairs a catalog display name with the lexer that highlights it.
type Entry struct {
	Name  string
	Lexer LexerID
}

// Registry is the fixed correspondence between catalog display names and
// lexer identifiers. The zero value is an empty registry.
type Registry struct {
	entries map[string]LexerID
}

// NewRegistry builds a registry from entries. A repeated name keeps its
// last lexer.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[string]LexerID, len(entries))}
	for _, e := range entries {
		r.entries[e.Name] = e.Lexer
	}

	return r
}

// Lookup returns the lexer registered for a display name.
func (r *Registry) Lookup(name string) (LexerID, bool) {
	if r == nil {
		return "", false
	}

	id, ok := r.entries[name]

	return id, ok
}

// Len returns the number of registered display names.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.entries)
}

// Names returns all registered display names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	return common.SortedKeys(r.entries)
}

// Lexers returns the distinct lexers referenced by the registry, sorted.
func (r *Registry) Lexers() []LexerID {
	if r == nil {
		return nil
	}

	ids := make([]LexerID, 0, len(r.entries))
	for _, id := range r.entries {
		ids = append(ids, id)
	}

	return common.Dedupe(ids)
}

// WordLists holds the curated keyword strings of one lexer. Index 0 is the
// primary list and index 1 the secondary list. A missing index means the
// slot is absent, which is different from a present but empty string.
type WordLists []string

// Slot returns the keyword string at index i and whether it is present.
func (w WordLists) Slot(i int) (string, bool) {
	if i < 0 || i >= len(w) {
		return "", false
	}

	return w[i], true
}

// MaxWordLists is the number of keyword slots a lexer config carries.
const MaxWordLists = 2

// KeywordCatalog maps lexers to their curated keyword lists.
type KeywordCatalog struct {
	lists map[LexerID]WordLists
}

// NewKeywordCatalog copies lists into a new catalog. Lists longer than
// MaxWordLists are truncated.
func NewKeywordCatalog(lists map[LexerID]WordLists) *KeywordCatalog {
	k := &KeywordCatalog{lists: make(map[LexerID]WordLists, len(lists))}
	for id, wl := range lists {
		if len(wl) > MaxWordLists {
			wl = wl[:MaxWordLists]
		}

		k.lists[id] = slices.Clone(wl)
	}

	return k
}

// Lookup returns the keyword lists for a lexer.
func (k *KeywordCatalog) Lookup(id LexerID) (WordLists, bool) {
	if k == nil {
		return nil, false
	}

	wl, ok := k.lists[id]

	return slices.Clone(wl), ok
}

// Lexers returns the lexers with curated keywords, sorted.
func (k *KeywordCatalog) Lexers() []LexerID {
	if k == nil {
		return nil
	}

	return common.SortedKeys(k.lists)
}
