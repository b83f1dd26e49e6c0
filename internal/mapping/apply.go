package mapping

import (
	"fmt"

	"lexmap-generator/internal/catalog"
	"lexmap-generator/internal/diagnostic"
	"lexmap-generator/internal/reconcile"
)

// Apply rewrites tables in place with the override rules, additions first
// and extension rules second. See the package documentation for details.
func Apply(r *Rules, tables *reconcile.Tables) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	if r == nil || tables == nil {
		return diags
	}

	for _, lr := range r.Languages {
		tables.Languages[lr.Name] = lr.Lexer

		for _, ext := range lr.Extensions {
			if ext = catalog.NormalizeExtension(ext); ext != "" {
				tables.Extensions[ext] = lr.Name
			}
		}
	}

	for _, er := range r.Extensions {
		if _, ok := tables.Languages[er.Language]; !ok {
			diags.AddInfo("override_target_missing",
				fmt.Sprintf("language %q is not in the language table; extension override skipped", er.Language),
				er.Language, "")

			continue
		}

		for _, ext := range er.Extensions {
			if ext = catalog.NormalizeExtension(ext); ext != "" {
				tables.Extensions[ext] = er.Language
			}
		}
	}

	return diags
}
