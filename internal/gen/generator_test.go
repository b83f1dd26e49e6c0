package gen

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexmap-generator/internal/ident"
	"lexmap-generator/internal/plan"
	"lexmap-generator/internal/reconcile"
	"lexmap-generator/internal/registry"
)

func resolvePlan(t *testing.T, langs map[string]registry.LexerID, exts map[string]string) *plan.ResolvedPlan {
	t.Helper()

	tables := reconcile.NewTables()
	for k, v := range langs {
		tables.Languages[k] = v
	}

	for k, v := range exts {
		tables.Extensions[k] = v
	}

	p, err := plan.NewResolver(ident.Default(), registry.DefaultKeywords(), plan.DefaultConfig()).Resolve(tables)
	require.NoError(t, err)

	return p
}

func pythonRustPlan(t *testing.T) *plan.ResolvedPlan {
	t.Helper()

	return resolvePlan(t,
		map[string]registry.LexerID{"Python": "python", "Rust": "rust"},
		map[string]string{".py": "Python", ".pyw": "Python", ".rs": "Rust"},
	)
}

func configFor(p *plan.ResolvedPlan) GeneratorConfig {
	cfg := DefaultGeneratorConfig()
	cfg.LexerConfigCount = len(p.Configs)

	return cfg
}

func generate(t *testing.T, p *plan.ResolvedPlan) (header, source string) {
	t.Helper()

	files, err := NewGenerator(configFor(p)).Generate(p)
	require.NoError(t, err, spew.Sdump(p))
	require.Len(t, files, 2)

	assert.Equal(t, "lexer_mappings_generated.h", files[0].Filename)
	assert.Equal(t, "lexer_mappings_generated.c", files[1].Filename)

	return string(files[0].Content), string(files[1].Content)
}

func TestGenerate_Header(t *testing.T) {
	header, _ := generate(t, pythonRustPlan(t))

	assert.Contains(t, header, "#ifndef LEXER_MAPPINGS_GENERATED_H\n#define LEXER_MAPPINGS_GENERATED_H\n")
	assert.Contains(t, header, "#include <windows.h>\n")
	assert.Contains(t, header, "typedef enum {\n    LANG_NONE, /* Plain Text */\n    LANG_C, /* C */\n")
	assert.Contains(t, header, "    LANG_SQL, /* SQL */\n    LANG_RUST, /* Rust */\n    LANG_COUNT\n} LanguageType;")
	assert.Contains(t, header, "#define EXTENSION_MAPPING_COUNT 3\n")
	assert.Contains(t, header, "#define LEXER_CONFIG_COUNT 2\n")
	assert.Contains(t, header, "const char* GetLanguageShortName(LanguageType language);")
	assert.True(t, strings.HasSuffix(header, "#endif /* LEXER_MAPPINGS_GENERATED_H */\n"))
}

func TestGenerate_Source(t *testing.T) {
	_, source := generate(t, pythonRustPlan(t))

	py, _ := registry.DefaultKeywords().Lookup("python")

	assert.Contains(t, source, "#include \"lexer_mappings_generated.h\"\n")
	assert.Contains(t, source, "static const char g_PythonKeywords[] =\n    \""+py[0]+"\";")
	assert.Contains(t, source, "static const char g_RustKeywords[] =")
	assert.Contains(t, source,
		"    {\".py\", LANG_PYTHON},\n    {\".pyw\", LANG_PYTHON},\n    {\".rs\", LANG_RUST},\n};")
	assert.Contains(t, source, "    {LANG_PYTHON, \"python\", g_PythonKeywords, NULL},\n")
	assert.Contains(t, source, "    {LANG_RUST, \"rust\", g_RustKeywords, NULL},\n")
	assert.Contains(t, source, "        case LANG_NONE: return \"Plain Text\";\n")
	assert.Contains(t, source, "        case LANG_RUST: return \"Rust\";\n        default: return \"Plain Text\";")
	assert.Contains(t, source,
		`"All Files\0*.*\0Text Files\0*.txt\0Scripting Files\0*.py;*.pyw;*.pyi\0";`)
}

func TestGenerate_SecondaryKeywordsAndNull(t *testing.T) {
	p := resolvePlan(t,
		map[string]registry.LexerID{"C++": "cpp", "HTML": "hypertext"},
		map[string]string{".cpp": "C++", ".html": "HTML"},
	)

	_, source := generate(t, p)

	assert.Contains(t, source, "static const char g_CppKeywords2[] =")
	assert.Contains(t, source, "    {LANG_CPP, \"cpp\", g_CppKeywords, g_CppKeywords2},\n")
	assert.Contains(t, source, "    {LANG_HTML, \"hypertext\", NULL, NULL},\n")
	assert.NotContains(t, source, "g_HypertextKeywords")
}

func TestGenerate_EscapesDisplayNames(t *testing.T) {
	p := &plan.ResolvedPlan{
		Enum: []plan.EnumEntry{{Ident: "LANG_ODD", Name: `Odd "Quoted" \ Lang`}},
		Configs: []plan.LexerConfig{
			{Language: `Odd "Quoted" \ Lang`, Ident: "LANG_ODD", Lexer: "null"},
		},
	}

	header, source := generate(t, p)

	assert.Contains(t, source, `case LANG_ODD: return "Odd \"Quoted\" \\ Lang";`)
	assert.Contains(t, header, `LANG_ODD, /* Odd "Quoted" \ Lang */`)
	assert.Contains(t, source, "    {NULL, LANG_NONE},\n};", "empty tables stay valid C")
}

func TestGenerate_ConfigCountMismatch(t *testing.T) {
	p := pythonRustPlan(t)

	cfg := DefaultGeneratorConfig()
	cfg.LexerConfigCount = 66

	files, err := NewGenerator(cfg).Generate(p)
	require.ErrorIs(t, err, ErrConfigCountMismatch)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), "66")
}

func TestGenerate_Deterministic(t *testing.T) {
	h1, s1 := generate(t, pythonRustPlan(t))
	h2, s2 := generate(t, pythonRustPlan(t))

	assert.Equal(t, h1, h2)
	assert.Equal(t, s1, s2)
}

func TestGenerate_CustomConfig(t *testing.T) {
	p := pythonRustPlan(t)

	cfg := GeneratorConfig{
		HeaderName:       "tables.h",
		SourceName:       "tables.c",
		Includes:         []string{"stddef.h", "stdint.h"},
		LexerConfigCount: len(p.Configs),
		GeneratorName:    "test",
	}

	files, err := NewGenerator(cfg).Generate(p)
	require.NoError(t, err)

	header := string(files[0].Content)
	assert.Contains(t, header, " * Generated by test\n")
	assert.Contains(t, header, "#define TABLES_H\n\n#include <stddef.h>\n#include <stdint.h>\n")
	assert.Contains(t, string(files[1].Content), "#include \"tables.h\"")
}

func TestGenerate_NilPlan(t *testing.T) {
	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(nil)
	require.Error(t, err)
}

func TestGenerate_KeywordSymbolCollision(t *testing.T) {
	p := &plan.ResolvedPlan{
		Keywords: []plan.KeywordSet{
			{Lexer: "c-sharp", Lists: registry.WordLists{"class"}},
			{Lexer: "c_sharp", Lists: registry.WordLists{"using"}},
		},
	}

	files, err := NewGenerator(configFor(p)).Generate(p)
	require.ErrorIs(t, err, ErrKeywordSymbolCollision)
	assert.Nil(t, files)
	assert.Contains(t, err.Error(), "g_C_SharpKeywords")
}
