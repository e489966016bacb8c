package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docline/docline/pattern"
)

func declared() []*pattern.Option {
	return []*pattern.Option{
		pattern.NewOption("-v", "--verbose", 0, pattern.BoolValue(false)),
		pattern.NewOption("-q", "", 0, pattern.BoolValue(false)),
		pattern.NewOption("-o", "--out", 1, pattern.None),
	}
}

func TestParseArgvPositionals(t *testing.T) {
	tokens, err := ParseArgv([]string{"add", "x.txt"}, declared())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	for i, want := range []string{"add", "x.txt"} {
		assert.Equal(t, pattern.KindArgument, tokens[i].Kind())
		assert.Equal(t, "", tokens[i].Name())
		assert.True(t, tokens[i].Value().Equal(pattern.StringValue(want)))
	}
}

func TestParseArgvLong(t *testing.T) {
	t.Run("bare flag", func(t *testing.T) {
		tokens, err := ParseArgv([]string{"--verbose"}, declared())
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, "--verbose", tokens[0].Name())
		assert.True(t, tokens[0].Value().Equal(pattern.BoolValue(true)))
	})

	t.Run("unambiguous prefix resolves", func(t *testing.T) {
		tokens, err := ParseArgv([]string{"--verb"}, declared())
		require.NoError(t, err)
		assert.Equal(t, "--verbose", tokens[0].Name())
	})

	t.Run("assignment form", func(t *testing.T) {
		tokens, err := ParseArgv([]string{"--out=a.txt"}, declared())
		require.NoError(t, err)
		assert.True(t, tokens[0].Value().Equal(pattern.StringValue("a.txt")))
	})

	t.Run("argument from the next entry", func(t *testing.T) {
		tokens, err := ParseArgv([]string{"--out", "a.txt"}, declared())
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.True(t, tokens[0].Value().Equal(pattern.StringValue("a.txt")))
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := ParseArgv([]string{"--out"}, declared())
		assert.ErrorContains(t, err, "requires an argument")
	})

	t.Run("argument on a flag", func(t *testing.T) {
		_, err := ParseArgv([]string{"--verbose=yes"}, declared())
		assert.ErrorContains(t, err, "must not have an argument")
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := ParseArgv([]string{"--what"}, declared())
		assert.ErrorContains(t, err, "unknown option")
	})
}

func TestParseArgvShorts(t *testing.T) {
	t.Run("stacked flags expand", func(t *testing.T) {
		tokens, err := ParseArgv([]string{"-vq"}, declared())
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, "--verbose", tokens[0].Name())
		assert.Equal(t, "-q", tokens[1].Name())
	})

	t.Run("argument from the rest of the cluster", func(t *testing.T) {
		tokens, err := ParseArgv([]string{"-oa.txt"}, declared())
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.True(t, tokens[0].Value().Equal(pattern.StringValue("a.txt")))
	})

	t.Run("argument from the next entry", func(t *testing.T) {
		tokens, err := ParseArgv([]string{"-qo", "a.txt"}, declared())
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.True(t, tokens[1].Value().Equal(pattern.StringValue("a.txt")))
	})

	t.Run("unknown short", func(t *testing.T) {
		_, err := ParseArgv([]string{"-x"}, declared())
		assert.ErrorContains(t, err, "unknown option")
	})
}

func TestParseArgvDoubleDash(t *testing.T) {
	// "--" and everything after it become positionals, options included
	tokens, err := ParseArgv([]string{"-v", "--", "--out", "-q"}, declared())
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, pattern.KindOption, tokens[0].Kind())
	for i, want := range []string{"--", "--out", "-q"} {
		assert.Equal(t, pattern.KindArgument, tokens[i+1].Kind())
		assert.True(t, tokens[i+1].Value().Equal(pattern.StringValue(want)))
	}
}

func TestParseArgvSingleDashIsPositional(t *testing.T) {
	tokens, err := ParseArgv([]string{"-"}, declared())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, pattern.KindArgument, tokens[0].Kind())
	assert.True(t, tokens[0].Value().Equal(pattern.StringValue("-")))
}

func TestParseArgvDeclaredSemantics(t *testing.T) {
	t.Run("counting option yields count tokens", func(t *testing.T) {
		verbose := pattern.NewOption("-v", "--verbose", 0, pattern.CountValue(0))
		tokens, err := ParseArgv([]string{"-v"}, []*pattern.Option{verbose})
		require.NoError(t, err)
		assert.True(t, tokens[0].Value().Equal(pattern.CountValue(1)))
	})

	t.Run("list option yields single-element lists", func(t *testing.T) {
		path := pattern.NewOption("", "--path", 1, pattern.ListValue())
		tokens, err := ParseArgv([]string{"--path=a"}, []*pattern.Option{path})
		require.NoError(t, err)
		assert.True(t, tokens[0].Value().Equal(pattern.ListValue("a")))
	})
}
