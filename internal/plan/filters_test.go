package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilters(t *testing.T) {
	names := []string{"C", "C++", "CSS", "Haskell", "Python", "Rust"}

	groups := buildFilters(DefaultFilterConfig(), names)

	assert.Equal(t, []FilterGroup{
		{Label: "All Files", Patterns: []string{"*.*"}},
		{Label: "Text Files", Patterns: []string{"*.txt"}},
		{Label: "Programming Files", Patterns: []string{"*.c", "*.h", "*.cpp", "*.hpp", "*.cc", "*.cxx"}},
		{Label: "Web Files", Patterns: []string{"*.css"}},
		{Label: "Scripting Files", Patterns: []string{"*.py", "*.pyw", "*.pyi"}},
	}, groups)
}

func TestBuildFilters_UncategorizedGoesToOther(t *testing.T) {
	cfg := FilterConfig{
		Categories: map[string]Category{},
		Patterns:   map[string][]string{"Nim": {"*.nim"}},
	}

	groups := buildFilters(cfg, []string{"Nim"})
	assert.Equal(t, []FilterGroup{{Label: "Other Files", Patterns: []string{"*.nim"}}}, groups)
}

func TestBuildFilters_DoesNotAliasConfig(t *testing.T) {
	cfg := DefaultFilterConfig()
	groups := buildFilters(cfg, nil)

	groups[0].Label = "changed"
	assert.Equal(t, "All Files", cfg.Leading[0].Label)
}
