// Package pattern implements the matching engine of a command-line
// usage-pattern grammar. A Pattern tree describes the shape of a valid
// program invocation (required groups, optional groups, alternatives,
// repetition, and leaf tokens for positionals, sub-commands, and options);
// Match decides whether a flat list of classified input tokens satisfies it.
package pattern

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants of the Pattern sum type.
type Kind int

const (
	KindArgument Kind = iota // positional argument leaf
	KindCommand              // sub-command leaf
	KindOption               // option leaf
	KindRequired             // conjunction of children
	KindOptional             // best-effort group
	KindAnyOptions           // "[options]" shorthand, matched as an empty Optional
	KindEither               // alternation with tie-break
	KindOneOrMore            // guarded repetition, exactly one child
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "Argument"
	case KindCommand:
		return "Command"
	case KindOption:
		return "Option"
	case KindRequired:
		return "Required"
	case KindOptional:
		return "Optional"
	case KindAnyOptions:
		return "AnyOptions"
	case KindEither:
		return "Either"
	case KindOneOrMore:
		return "OneOrMore"
	default:
		return "Unknown"
	}
}

// Pattern is a node in the usage-grammar tree, either a leaf matched against
// a single input token or a composite carrying child patterns.
type Pattern interface {
	Kind() Kind
	String() string
}

// Leaf is implemented by Argument, Command, and Option. A leaf carries a
// name (its identity for binding purposes) and a value representing either
// its declared default or, after matching, its resolved occurrence.
type Leaf interface {
	Pattern
	Name() string
	Value() Value
	// WithValue returns a copy of the leaf carrying v instead of its
	// current value. The receiver is left untouched.
	WithValue(v Value) Leaf
}

// Composite is implemented by Required, Optional, Either, and OneOrMore.
type Composite interface {
	Pattern
	Children() []Pattern
}

var (
	_ Leaf = (*Argument)(nil)
	_ Leaf = (*Command)(nil)
	_ Leaf = (*Option)(nil)

	_ Composite = (*Required)(nil)
	_ Composite = (*Optional)(nil)
	_ Composite = (*Either)(nil)
	_ Composite = (*OneOrMore)(nil)

	_ Pattern = (*AnyOptions)(nil)
)

// Argument is a positional argument leaf. Input tokens produced by the argv
// classifier are Arguments with an empty name and a string value.
type Argument struct {
	name  string
	value Value
}

// NewArgument returns an Argument leaf with the given name and value.
func NewArgument(name string, value Value) *Argument {
	return &Argument{name: name, value: value}
}

func (a *Argument) Kind() Kind   { return KindArgument }
func (a *Argument) Name() string { return a.name }
func (a *Argument) Value() Value { return a.value }

func (a *Argument) WithValue(v Value) Leaf { return &Argument{name: a.name, value: v} }

// SetValue replaces the declared default in place. Intended for tree
// fix-up before matching; Match itself never mutates leaves.
func (a *Argument) SetValue(v Value) { a.value = v }

func (a *Argument) String() string {
	return fmt.Sprintf("Argument(%q, %s)", a.name, a.value)
}

// Command is a sub-command leaf. It matches a positional token whose string
// value equals the command's name; its resolved value is the boolean true.
type Command struct {
	name  string
	value Value
}

// NewCommand returns a Command leaf with a false value.
func NewCommand(name string) *Command {
	return &Command{name: name, value: BoolValue(false)}
}

func (c *Command) Kind() Kind   { return KindCommand }
func (c *Command) Name() string { return c.name }
func (c *Command) Value() Value { return c.value }

func (c *Command) WithValue(v Value) Leaf { return &Command{name: c.name, value: v} }

func (c *Command) String() string {
	return fmt.Sprintf("Command(%q, %s)", c.name, c.value)
}

// Option is an option leaf. Besides its value it carries the short and long
// spellings and whether the option consumes an argument; those are resolved
// by the upstream classifier and are irrelevant to matching beyond identity.
type Option struct {
	short    string // e.g. "-v", empty if none
	long     string // e.g. "--verbose", empty if none
	argCount int    // 0 or 1
	value    Value
}

// NewOption returns an Option leaf. Either spelling may be empty but not
// both. argCount must be 0 or 1.
func NewOption(short, long string, argCount int, value Value) *Option {
	return &Option{short: short, long: long, argCount: argCount, value: value}
}

func (o *Option) Kind() Kind { return KindOption }

// Name returns the option's identity: the long spelling when present,
// otherwise the short one.
func (o *Option) Name() string {
	if o.long != "" {
		return o.long
	}
	return o.short
}

func (o *Option) Value() Value  { return o.value }
func (o *Option) Short() string { return o.short }
func (o *Option) Long() string  { return o.long }
func (o *Option) ArgCount() int { return o.argCount }

func (o *Option) WithValue(v Value) Leaf {
	return &Option{short: o.short, long: o.long, argCount: o.argCount, value: v}
}

// SetValue replaces the declared default in place. Intended for tree
// fix-up before matching; Match itself never mutates leaves.
func (o *Option) SetValue(v Value) { o.value = v }

func (o *Option) String() string {
	return fmt.Sprintf("Option(%q, %q, %d, %s)", o.short, o.long, o.argCount, o.value)
}

// Required matches iff every child matches in sequence.
type Required struct {
	children []Pattern
}

func NewRequired(children ...Pattern) *Required { return &Required{children: children} }

func (r *Required) Kind() Kind          { return KindRequired }
func (r *Required) Children() []Pattern { return r.children }
func (r *Required) String() string      { return formatComposite("Required", r.children) }

// Optional attempts each child and absorbs failures; it never fails itself.
type Optional struct {
	children []Pattern
}

func NewOptional(children ...Pattern) *Optional { return &Optional{children: children} }

func (o *Optional) Kind() Kind          { return KindOptional }
func (o *Optional) Children() []Pattern { return o.children }
func (o *Optional) String() string      { return formatComposite("Optional", o.children) }

// Either matches the child that consumes the most tokens; earlier children
// win ties.
type Either struct {
	children []Pattern
}

func NewEither(children ...Pattern) *Either { return &Either{children: children} }

func (e *Either) Kind() Kind          { return KindEither }
func (e *Either) Children() []Pattern { return e.children }
func (e *Either) String() string      { return formatComposite("Either", e.children) }

// OneOrMore repeats its single child as long as it keeps matching and
// consuming input. Any child count other than one is a precondition
// violation reported by Match.
type OneOrMore struct {
	children []Pattern
}

func NewOneOrMore(children ...Pattern) *OneOrMore { return &OneOrMore{children: children} }

func (o *OneOrMore) Kind() Kind          { return KindOneOrMore }
func (o *OneOrMore) Children() []Pattern { return o.children }
func (o *OneOrMore) String() string      { return formatComposite("OneOrMore", o.children) }

// AnyOptions is the "[options]" shorthand. It is matched as an empty
// Optional: a no-op that always succeeds, consuming and collecting nothing.
type AnyOptions struct{}

func NewAnyOptions() *AnyOptions { return &AnyOptions{} }

func (a *AnyOptions) Kind() Kind     { return KindAnyOptions }
func (a *AnyOptions) String() string { return "AnyOptions()" }

func formatComposite(name string, children []Pattern) string {
	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = child.String()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}

// Leaves returns every leaf under p in declaration order. The root itself
// is included when it is a leaf.
func Leaves(p Pattern) []Leaf {
	switch pat := p.(type) {
	case Leaf:
		return []Leaf{pat}
	case Composite:
		var leaves []Leaf
		for _, child := range pat.Children() {
			leaves = append(leaves, Leaves(child)...)
		}
		return leaves
	default:
		// AnyOptions carries no children.
		return nil
	}
}
