package usage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docline/docline/pattern"
)

func TestParseSingleLine(t *testing.T) {
	spec, err := Parse("Usage: prog add <file>")
	require.NoError(t, err)
	assert.Equal(t, "prog", spec.Name)

	// the line's group is the root, with no redundant wrapper around it
	want := pattern.NewRequired(
		pattern.NewCommand("add"),
		pattern.NewArgument("<file>", pattern.None),
	)
	assert.Empty(t, cmp.Diff(want, spec.Pattern, treeOpts()))
}

func TestParseMultipleLines(t *testing.T) {
	doc := `Usage:
  prog add <file>
  prog remove <file>
`
	spec, err := Parse(doc)
	require.NoError(t, err)

	either, ok := spec.Pattern.(*pattern.Either)
	require.True(t, ok)
	assert.Len(t, either.Children(), 2)
}

func TestParseEmptyUsageLine(t *testing.T) {
	// "Usage: prog" alone accepts an empty invocation
	spec, err := Parse("Usage: prog")
	require.NoError(t, err)
	want := pattern.NewRequired()
	assert.Empty(t, cmp.Diff(want, spec.Pattern, treeOpts()))
}

func TestParseWiresOptionDescriptions(t *testing.T) {
	doc := `Usage: prog [-v] [--out=FILE] <file>...

Options:
  -v --verbose  Say more.
  -o --out=FILE  Output file [default: a.out].
`
	spec, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, spec.Options, 2)

	// the leaves in the tree are the declared options themselves
	var optLeaves []*pattern.Option
	for _, leaf := range pattern.Leaves(spec.Pattern) {
		if o, ok := leaf.(*pattern.Option); ok {
			optLeaves = append(optLeaves, o)
		}
	}
	require.Len(t, optLeaves, 2)
	assert.Same(t, spec.Options[0], optLeaves[0])
	assert.Same(t, spec.Options[1], optLeaves[1])

	// <file>... got list semantics from the repetition fix-up
	for _, leaf := range pattern.Leaves(spec.Pattern) {
		if leaf.Name() == "<file>" {
			assert.Equal(t, pattern.ValueList, leaf.Value().Kind())
		}
	}
}

func TestParseSectionErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing section", "This doc has no grammar.", `no "usage:" section`},
		{"duplicated section", "Usage: prog\n\nusage: prog\n", "more than one"},
		{"no program name", "Usage:\n\nOptions:\n", "no program name"},
		{"unbalanced group", "Usage: prog (add", "unmatched"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestUsageSectionSpan(t *testing.T) {
	doc := "Intro.\n\nUsage:\n  prog go\n\nOptions:\n  -v  More.\n"
	start, end, err := usageSection(doc)
	require.NoError(t, err)
	assert.Equal(t, "Usage:\n  prog go", doc[start:end])
}
