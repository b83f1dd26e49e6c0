package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSymbol(t *testing.T) {
	assert.Equal(t, "g_PythonKeywords", KeywordSymbol("python", 0))
	assert.Equal(t, "g_CppKeywords2", KeywordSymbol("cpp", 1))
	assert.Equal(t, "g_X86AsmKeywords", KeywordSymbol("x86asm", 0))
	assert.Equal(t, "g_Objective_CKeywords", KeywordSymbol("objective-c", 0))
	assert.Equal(t, KeywordSymbol("c-sharp", 0), KeywordSymbol("c_sharp", 0))
}
