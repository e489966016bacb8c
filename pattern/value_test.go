package pattern

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValueKinds(t *testing.T) {
	assert.True(t, None.IsNone())
	assert.Equal(t, ValueNone, Value{}.Kind())
	assert.Equal(t, ValueBool, BoolValue(true).Kind())
	assert.Equal(t, ValueString, StringValue("x").Kind())
	assert.Equal(t, ValueCount, CountValue(3).Kind())
	assert.Equal(t, ValueList, ListValue("a", "b").Kind())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, ListValue("a", "b").Equal(ListValue("a", "b")))
	assert.False(t, ListValue("a").Equal(ListValue("a", "b")))
	assert.False(t, BoolValue(true).Equal(StringValue("true")))
	assert.True(t, None.Equal(Value{}))
}

func TestValueListDoesNotAlias(t *testing.T) {
	items := []string{"a", "b"}
	v := ListValue(items...)
	items[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, v.List())

	got := v.List()
	got[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, v.List())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{None, "nil"},
		{BoolValue(false), "false"},
		{StringValue("a b"), `"a b"`},
		{CountValue(2), "2"},
		{ListValue("a", "b"), `["a", "b"]`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.String())
	}
}

func TestValueMarshal(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		wantJSON string
		wantYAML string
	}{
		{"none", None, "null", "null\n"},
		{"bool", BoolValue(true), "true", "true\n"},
		{"string", StringValue("x"), `"x"`, "x\n"},
		{"count", CountValue(2), "2", "2\n"},
		{"list", ListValue("a", "b"), `["a","b"]`, "- a\n- b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, string(j))

			y, err := yaml.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wantYAML, string(y))
		})
	}
}
