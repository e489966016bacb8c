package pattern

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind discriminates the variants of the Value tagged union.
type ValueKind int

const (
	ValueNone   ValueKind = iota // absent, the zero Value
	ValueBool                    // boolean flag
	ValueString                  // plain string
	ValueCount                   // integer occurrence count
	ValueList                    // list of strings
)

func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueBool:
		return "bool"
	case ValueString:
		return "string"
	case ValueCount:
		return "count"
	case ValueList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the resolved datum carried by a leaf pattern: its declared
// default before matching, or its resolved occurrence after. The zero Value
// is the absent variant.
type Value struct {
	kind  ValueKind
	b     bool
	s     string
	count int
	list  []string
}

// None is the absent Value.
var None = Value{}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// StringValue returns a plain string Value.
func StringValue(s string) Value { return Value{kind: ValueString, s: s} }

// CountValue returns an integer occurrence count Value.
func CountValue(n int) Value { return Value{kind: ValueCount, count: n} }

// ListValue returns a list-of-strings Value. The items are copied so the
// Value does not alias the caller's slice.
func ListValue(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{kind: ValueList, list: list}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNone() bool    { return v.kind == ValueNone }
func (v Value) Bool() bool      { return v.b }
func (v Value) Str() string     { return v.s }
func (v Value) Count() int      { return v.count }

// List returns a copy of the list payload. Mutating the result does not
// affect the Value.
func (v Value) List() []string {
	list := make([]string, len(v.list))
	copy(list, v.list)
	return list
}

// Equal reports whether two Values carry the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueBool:
		return v.b == o.b
	case ValueString:
		return v.s == o.s
	case ValueCount:
		return v.count == o.count
	case ValueList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Any returns the underlying datum as a plain Go value: nil, bool, string,
// int, or []string.
func (v Value) Any() any {
	switch v.kind {
	case ValueBool:
		return v.b
	case ValueString:
		return v.s
	case ValueCount:
		return v.count
	case ValueList:
		return v.List()
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueString:
		return strconv.Quote(v.s)
	case ValueCount:
		return strconv.Itoa(v.count)
	case ValueList:
		quoted := make([]string, len(v.list))
		for i, item := range v.list {
			quoted[i] = strconv.Quote(item)
		}
		return fmt.Sprintf("[%s]", strings.Join(quoted, ", "))
	default:
		return "nil"
	}
}

// MarshalJSON encodes the underlying datum, not the union wrapper.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// MarshalYAML encodes the underlying datum, not the union wrapper.
func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}
