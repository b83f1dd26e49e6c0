package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{".rs": 1, ".py": 2, ".pyw": 3}
	assert.Equal(t, []string{".py", ".pyw", ".rs"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}

func TestDedupe(t *testing.T) {
	in := []string{"cpp", "python", "cpp", "bash"}
	assert.Equal(t, []string{"bash", "cpp", "python"}, Dedupe(in))
	// input untouched
	assert.Equal(t, []string{"cpp", "python", "cpp", "bash"}, in)
}
