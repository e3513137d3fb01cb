package symtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFindEnsure(t *testing.T) {
	table := New()

	a := table.Add("a")
	assert.Equal(t, 0, a)
	b := table.Add("b")
	assert.Equal(t, 1, b)

	assert.Equal(t, 0, table.Find("a"))
	assert.Equal(t, 1, table.Find("b"))
	assert.Equal(t, -1, table.Find("c"))

	// Redefinition via Add is rejected.
	assert.Equal(t, -1, table.Add("a"))

	// Ensure is idempotent.
	assert.Equal(t, 0, table.Ensure("a"))
	assert.Equal(t, 2, table.Ensure("c"))
	assert.Equal(t, 2, table.Ensure("c"))

	assert.Equal(t, 3, table.Count())
	assert.Equal(t, "a", table.Name(0))
	assert.Equal(t, []string{"a", "b", "c"}, table.Names())
}

func TestSelectorArityEncoding(t *testing.T) {
	// A method selector is base-name followed by one space per argument.
	table := New()
	zero := table.Ensure("add")
	one := table.Ensure("add ")
	two := table.Ensure("add  ")
	assert.NotEqual(t, zero, one)
	assert.NotEqual(t, one, two)
	// Both a call site and a definition site constructing the same selector
	// string must resolve to the same index.
	assert.Equal(t, two, table.Ensure("add  "))
}
