package plan

import (
	"slices"
)

// Category groups languages in the file-dialog filter.
type Category string

const (
	CategoryProgramming Category = "Programming"
	CategoryWeb         Category = "Web"
	CategoryScripting   Category = "Scripting"
	CategoryData        Category = "Data"
	CategoryConfig      Category = "Config"
	CategoryOther       Category = "Other"
)

// categoryOrder is the output order of the category groups.
var categoryOrder = []Category{
	CategoryProgramming, CategoryWeb, CategoryScripting, CategoryData, CategoryConfig, CategoryOther,
}

// FilterConfig holds the lookup tables behind the file-dialog filter.
type FilterConfig struct {
	// Categories maps a display name to its category. Unlisted names fall
	// into CategoryOther.
	Categories map[string]Category
	// Patterns maps a display name to the glob patterns it contributes.
	// Unlisted names contribute nothing.
	Patterns map[string][]string
	// Leading groups always open the filter.
	Leading []FilterGroup
}

// DefaultFilterConfig returns the built-in filter tables.
func DefaultFilterConfig() FilterConfig {
	categories := map[string]Category{}

	for cat, names := range map[Category][]string{
		CategoryProgramming: {"C", "C++", "Rust", "Go", "Java", "C#", "Kotlin", "Swift"},
		CategoryWeb:         {"HTML", "CSS", "JavaScript", "TypeScript", "XML", "JSON"},
		CategoryScripting:   {"Python", "Ruby", "Perl", "Lua", "Shell", "PowerShell"},
		CategoryData:        {"YAML", "TOML", "CSV", "SQL"},
		CategoryConfig:      {"Makefile", "CMake", "Dockerfile"},
	} {
		for _, name := range names {
			categories[name] = cat
		}
	}

	return FilterConfig{
		Categories: categories,
		Patterns: map[string][]string{
			"C":          {"*.c", "*.h"},
			"C++":        {"*.cpp", "*.hpp", "*.cc", "*.cxx"},
			"Python":     {"*.py", "*.pyw", "*.pyi"},
			"JavaScript": {"*.js", "*.mjs"},
			"HTML":       {"*.html", "*.htm"},
			"CSS":        {"*.css"},
			"XML":        {"*.xml"},
			"JSON":       {"*.json"},
		},
		Leading: []FilterGroup{
			{Label: "All Files", Patterns: []string{"*.*"}},
			{Label: "Text Files", Patterns: []string{"*.txt"}},
		},
	}
}

// buildFilters groups the patterns of the given languages by category.
// names must be sorted; a category with no patterns is omitted.
func buildFilters(cfg FilterConfig, names []string) []FilterGroup {
	groups := slices.Clone(cfg.Leading)
	byCategory := map[Category][]string{}

	for _, name := range names {
		patterns := cfg.Patterns[name]
		if len(patterns) == 0 {
			continue
		}

		cat, ok := cfg.Categories[name]
		if !ok {
			cat = CategoryOther
		}

		byCategory[cat] = append(byCategory[cat], patterns...)
	}

	for _, cat := range categoryOrder {
		if patterns := byCategory[cat]; len(patterns) > 0 {
			groups = append(groups, FilterGroup{Label: string(cat) + " Files", Patterns: patterns})
		}
	}

	return groups
}
