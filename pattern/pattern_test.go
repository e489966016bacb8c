package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaves(t *testing.T) {
	file := NewArgument("<file>", None)
	verbose := NewOption("-v", "--verbose", 0, BoolValue(false))
	tree := NewRequired(
		NewEither(NewCommand("add"), NewCommand("remove")),
		NewOptional(verbose, NewAnyOptions()),
		NewOneOrMore(file),
	)

	leaves := Leaves(tree)
	require.Len(t, leaves, 4)
	assert.Equal(t, "add", leaves[0].Name())
	assert.Equal(t, "remove", leaves[1].Name())
	assert.Same(t, verbose, leaves[2])
	assert.Same(t, file, leaves[3])
}

func TestLeavesOnLeaf(t *testing.T) {
	leaf := NewCommand("go")
	leaves := Leaves(leaf)
	require.Len(t, leaves, 1)
	assert.Same(t, leaf, leaves[0])
}

func TestWithValueCopies(t *testing.T) {
	orig := NewOption("-o", "--out", 1, None)
	resolved := orig.WithValue(StringValue("a.txt"))

	assert.True(t, orig.Value().IsNone())
	assert.True(t, resolved.Value().Equal(StringValue("a.txt")))

	opt, ok := resolved.(*Option)
	require.True(t, ok)
	assert.Equal(t, "-o", opt.Short())
	assert.Equal(t, 1, opt.ArgCount())
}

func TestOptionName(t *testing.T) {
	assert.Equal(t, "--verbose", NewOption("-v", "--verbose", 0, None).Name())
	assert.Equal(t, "-v", NewOption("-v", "", 0, None).Name())
}

func TestString(t *testing.T) {
	p := NewRequired(
		NewCommand("add"),
		NewOneOrMore(NewArgument("<file>", None)),
	)
	assert.Equal(t,
		`Required(Command("add", false), OneOrMore(Argument("<file>", nil)))`,
		p.String())
}
