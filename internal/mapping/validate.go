package mapping

import (
	"fmt"

	"lexmap-generator/internal/diagnostic"
)

// Validate checks rules for structural problems. Errors make the rules
// unusable; warnings flag rules that shadow each other.
func Validate(r *Rules) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if r == nil {
		res.AddError("rules_is_nil", "override rules are nil", "", "")
		return res
	}

	if r.Version != "" && r.Version != SchemaVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported overrides version %q (want %q)", r.Version, SchemaVersion), "", "")
	}

	seenLang := map[string]struct{}{}

	for i, lr := range r.Languages {
		where := fmt.Sprintf("languages[%d]", i)

		if lr.Name == "" {
			res.AddError("language_name_missing", "language rule has no name", "", where)
			continue
		}

		if lr.Lexer == "" {
			res.AddError("language_lexer_missing", "language rule has no lexer", lr.Name, where)
		}

		if len(lr.Extensions) == 0 {
			res.AddError("language_extensions_missing", "language rule has no extensions", lr.Name, where)
		}

		if _, ok := seenLang[lr.Name]; ok {
			res.AddWarning("duplicate_language_rule", "language added more than once; later rule wins", lr.Name, where)
		}

		seenLang[lr.Name] = struct{}{}
	}

	forced := map[string]string{}

	for i, er := range r.Extensions {
		where := fmt.Sprintf("extensions[%d]", i)

		if er.Language == "" {
			res.AddError("extension_language_missing", "extension rule has no language", "", where)
			continue
		}

		if len(er.Extensions) == 0 {
			res.AddError("extension_list_missing", "extension rule has no extensions", er.Language, where)
		}

		for _, ext := range er.Extensions {
			if prev, ok := forced[ext]; ok && prev != er.Language {
				res.AddWarning("conflicting_extension_rule",
					fmt.Sprintf("extension forced to %q and %q; later rule wins", prev, er.Language), er.Language, ext)
			}

			forced[ext] = er.Language
		}
	}

	return res
}
