package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	catalog := []string{"Batchfile", "Python", "Shell", "C", "C++", "ShellSession", "Roff"}

	assert.Equal(t, []string{"Batchfile"}, Suggest("Batch", catalog, 3))
	assert.Equal(t, []string{"Shell", "ShellSession"}, Suggest("shell", catalog, 3))
	assert.Empty(t, Suggest("Fortran", catalog, 3))
}

func TestSuggest_Limit(t *testing.T) {
	candidates := []string{"Perl", "Perl6", "Pearl", "Earl"}

	got := Suggest("Perl 5", candidates, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Perl", got[0])
}

func TestRank_ExcludesSelfAndSortsStably(t *testing.T) {
	ranked := Rank("Less", []string{"Less", "Lesss", "Lass", "Loss"}, 0.5)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Lesss", ranked[0].Name)
	assert.Equal(t, []string{"Lass", "Loss"}, []string{ranked[1].Name, ranked[2].Name})
}

func TestPrefixMatch_IgnoresSingleRunes(t *testing.T) {
	assert.False(t, prefixMatch("C", "C++"))
	assert.True(t, prefixMatch("Batch", "batchfile"))
}
