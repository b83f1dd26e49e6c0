package gen

import "text/template"

// fallbackName is returned by GetLanguageName for unknown values.
const fallbackName = "Plain Text"

var headerTemplate = template.Must(template.New("header").Parse(`/*
 * Auto-generated lexer mappings header
 * Generated by {{.Generator}}
 * DO NOT EDIT - This file is automatically generated
 */

#ifndef {{.Guard}}
#define {{.Guard}}
{{range .Includes}}
#include <{{.}}>
{{- end}}

/* Supported language types */
typedef enum {
{{- range .Enum}}
    {{.Ident}}, /* {{.Comment}} */
{{- end}}
    {{.Count}}
} LanguageType;

/* External declarations for generated data structures */
typedef struct {
    const char* extension;
    LanguageType language;
} ExtensionMapping;

typedef struct {
    LanguageType language;
    const char* lexerName;
    const char* keywords1;
    const char* keywords2;
} LexerConfig;

extern const ExtensionMapping g_extensionMappings[];
extern const LexerConfig g_lexerConfigs[];
extern const char* g_fileFilters;

/* Array size constants */
#define EXTENSION_MAPPING_COUNT {{.ExtensionCount}}
#define LEXER_CONFIG_COUNT {{.LexerConfigCount}}

/* Function declarations for generated code */
const char* GetLanguageName(LanguageType language);
const char* GetLanguageShortName(LanguageType language);

#endif /* {{.Guard}} */
`))

var sourceTemplate = template.Must(template.New("source").Parse(`/*
 * Auto-generated lexer mappings implementation
 * Generated by {{.Generator}}
 * DO NOT EDIT - This file is automatically generated
 */

#include "{{.HeaderName}}"
{{range .Keywords}}
/* {{.Lexer}} {{.Kind}} keywords */
static const char {{.Symbol}}[] =
    "{{.Literal}}";
{{end}}
/* Extension to LanguageType mapping */
const ExtensionMapping g_extensionMappings[] = {
{{- range .Extensions}}
    {"{{.Extension}}", {{.Ident}}},
{{- else}}
    {NULL, LANG_NONE},
{{- end}}
};

/* LanguageType to lexer configuration mapping */
const LexerConfig g_lexerConfigs[] = {
{{- range .Configs}}
    {{printf "{%s, \"%s\", %s, %s}," .Ident .Lexer .Keywords1 .Keywords2}}
{{- else}}
    {LANG_NONE, NULL, NULL, NULL},
{{- end}}
};

/* File filter string for open and save dialogs */
const char* g_fileFilters =
    "{{.Filters}}";

/* Language name lookup functions */
const char* GetLanguageName(LanguageType language) {
    switch (language) {
{{- range .Names}}
        case {{.Ident}}: return "{{.Name}}";
{{- end}}
        default: return "` + fallbackName + `";
    }
}

const char* GetLanguageShortName(LanguageType language) {
    return GetLanguageName(language);
}
`))
