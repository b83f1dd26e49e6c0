package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexmap-generator/internal/reconcile"
	"lexmap-generator/internal/registry"
)

func reconciledTables() *reconcile.Tables {
	t := reconcile.NewTables()
	t.Languages["TypeScript"] = "cpp"
	t.Languages["XML"] = "xml"
	t.Extensions[".ts"] = "XML"
	t.Extensions[".xml"] = "XML"

	return t
}

func TestApply_Defaults(t *testing.T) {
	tables := reconciledTables()

	diags := Apply(DefaultRules(), tables)
	assert.Empty(t, diags.All())

	assert.Equal(t, "TypeScript", tables.Extensions[".ts"], "override beats the catalog")
	assert.Equal(t, "TypeScript", tables.Extensions[".tsx"])
	assert.Equal(t, "XML", tables.Extensions[".xml"])

	assert.Equal(t, registry.LexerID("registry"), tables.Languages["Windows Registry"])
	assert.Equal(t, "Windows Registry", tables.Extensions[".reg"])
}

func TestApply_Idempotent(t *testing.T) {
	once := reconciledTables()
	Apply(DefaultRules(), once)

	twice := once.Clone()
	Apply(DefaultRules(), twice)

	assert.Equal(t, once, twice)
}

func TestApply_TargetMissing(t *testing.T) {
	tables := reconcile.NewTables()
	tables.Languages["XML"] = "xml"
	tables.Extensions[".ts"] = "XML"

	rules := &Rules{Extensions: []ExtensionRule{{Extensions: StringOrArray{".ts"}, Language: "TypeScript"}}}
	diags := Apply(rules, tables)

	assert.Equal(t, "XML", tables.Extensions[".ts"], "no TypeScript in the table, catalog assignment stays")
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "override_target_missing", diags.Infos[0].Code)
}

func TestApply_AdditionThenExtensionRule(t *testing.T) {
	tables := reconcile.NewTables()

	rules := &Rules{
		Languages:  []LanguageRule{{Name: "Nginx", Lexer: "nginx", Extensions: StringOrArray{"conf"}}},
		Extensions: []ExtensionRule{{Extensions: StringOrArray{".nginx"}, Language: "Nginx"}},
	}
	diags := Apply(rules, tables)

	assert.Empty(t, diags.All(), "extension rules see languages added in step one")
	assert.Equal(t, map[string]string{".conf": "Nginx", ".nginx": "Nginx"}, tables.Extensions)
}

func TestApply_NilSafe(t *testing.T) {
	noRules := Apply(nil, reconcile.NewTables())
	assert.Empty(t, noRules.All())

	noTables := Apply(DefaultRules(), nil)
	assert.Empty(t, noTables.All())
}
