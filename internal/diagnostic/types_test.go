package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorAggregation(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("duplicate_extension", ".h claimed twice", "C++", ".h")
	assert.False(t, d.HasErrors())

	d.AddError("identifier_collision", "LANG_X used twice", "X", "LANG_X")
	d.AddError("lexer_config_count_mismatch", "declared 3, emitted 2", "", "")

	require.True(t, d.HasErrors())
	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[X] LANG_X: [identifier_collision] LANG_X used twice; [lexer_config_count_mismatch] declared 3, emitted 2",
		err.Error())
}

func TestDiagnostics_MergeAndByCode(t *testing.T) {
	var a, b Diagnostics
	a.AddInfo("missing_keywords", "no keywords", "hypertext", "")
	b.AddInfo("missing_keywords", "no keywords", "yaml", "")
	b.AddWarning("lexer_unavailable", "not found", "props", "")

	a.Merge(b)

	assert.Len(t, a.All(), 3)
	assert.Len(t, a.ByCode("missing_keywords"), 2)
	assert.Equal(t, DiagnosticWarning, a.All()[0].Severity)
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	var d Diagnostics
	d.AddInfoWithSuggestions("registry_name_not_in_catalog", "not in catalog", "Batch",
		[]string{"Batchfile"})

	assert.Equal(t,
		"[Batch]: [registry_name_not_in_catalog] not in catalog (did you mean: Batchfile?)",
		d.Infos[0].String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
