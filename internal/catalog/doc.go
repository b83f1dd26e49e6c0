// Package catalog models the external language catalog (GitHub Linguist
// languages.yml) and the providers that acquire it.
//
// Parse keeps the declaration order of the YAML document. Downstream
// stages resolve duplicate extensions by that order, so the catalog is a
// slice rather than a map.
//
// Providers:
//   - HTTPProvider fetches the raw document over HTTP
//   - FileProvider reads a local copy
//   - CachedProvider wraps a raw source, refreshes an on-disk cache on
//     success and falls back to it when the source fails
package catalog
