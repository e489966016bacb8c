// Package docline binds command-line arguments against a program's help
// text. The help text doubles as the grammar: its usage section is compiled
// into a pattern tree, the arguments are classified into typed tokens, and
// the two are matched to produce a name-to-value environment.
package docline

import (
	"strings"

	"github.com/docline/docline/pattern"
	"github.com/docline/docline/usage"
)

// Opts is the final binding environment: every leaf and option name mapped
// to its resolved value, with declared defaults filled in for anything the
// input did not mention.
type Opts map[string]pattern.Value

// Bool returns the named binding as a boolean; absent or non-boolean
// bindings read as false.
func (o Opts) Bool(name string) bool { return o[name].Bool() }

// String returns the named binding's string payload, or "" when the binding
// is absent or not a string.
func (o Opts) String(name string) string { return o[name].Str() }

// Count returns the named binding's occurrence count.
func (o Opts) Count(name string) int { return o[name].Count() }

// Strings returns the named binding's list payload.
func (o Opts) Strings(name string) []string { return o[name].List() }

// UsageError reports input that does not conform to the usage grammar. It
// carries the usage section for display.
type UsageError struct {
	Usage  string
	Reason string // classifier detail, empty when matching itself failed
}

func (e *UsageError) Error() string {
	if e.Reason != "" {
		return e.Reason + "\n" + strings.TrimSpace(e.Usage)
	}
	return strings.TrimSpace(e.Usage)
}

// HelpError reports that the arguments asked for help. Text is the full
// help text to print; this is a control-flow signal, not a failure.
type HelpError struct {
	Text string
}

func (e *HelpError) Error() string { return strings.TrimSpace(e.Text) }

// Parse compiles doc and binds argv against it. argv must not include the
// program name. A grammar error in doc is returned as-is; non-conforming
// input is returned as a *UsageError; a -h or --help occurrence
// short-circuits into a *HelpError before matching.
func Parse(doc string, argv []string) (Opts, error) {
	spec, err := usage.Parse(doc)
	if err != nil {
		return nil, err
	}

	tokens, err := usage.ParseArgv(argv, spec.Options)
	if err != nil {
		return nil, &UsageError{Usage: spec.Usage, Reason: err.Error()}
	}

	for _, tok := range tokens {
		if opt, ok := tok.(*pattern.Option); ok && (opt.Name() == "--help" || opt.Name() == "-h") {
			return nil, &HelpError{Text: doc}
		}
	}

	remaining, collected, ok := pattern.Match(spec.Pattern, tokens, nil)
	if !ok || len(remaining) > 0 {
		return nil, &UsageError{Usage: spec.Usage}
	}

	opts := make(Opts)
	seed := func(name string, v pattern.Value) {
		// a leaf repeated in one alternative may appear unmarked in
		// another; the marked default keeps the binding's shape stable
		if prev, bound := opts[name]; !bound || prev.IsNone() {
			opts[name] = v
		}
	}
	for _, leaf := range pattern.Leaves(spec.Pattern) {
		seed(leaf.Name(), leaf.Value())
	}
	for _, opt := range spec.Options {
		seed(opt.Name(), opt.Value())
	}
	fold(opts, collected)
	return opts, nil
}

// fold merges the collected bindings into the defaults. Count and list
// values arrive already merged into a single entry per name; repeated plain
// strings are distinct entries and are folded into a list here, seeded by a
// list-valued default when the grammar declared the leaf repeating.
func fold(opts Opts, collected []pattern.Leaf) {
	seen := make(map[string]bool)
	for _, b := range collected {
		name, v := b.Name(), b.Value()
		if !seen[name] {
			seen[name] = true
			if opts[name].Kind() == pattern.ValueList && v.Kind() == pattern.ValueString {
				opts[name] = pattern.ListValue(v.Str())
			} else {
				opts[name] = v
			}
			continue
		}

		prev := opts[name]
		switch {
		case prev.Kind() == pattern.ValueList && v.Kind() == pattern.ValueString:
			opts[name] = pattern.ListValue(append(prev.List(), v.Str())...)
		case prev.Kind() == pattern.ValueString && v.Kind() == pattern.ValueString:
			opts[name] = pattern.ListValue(prev.Str(), v.Str())
		default:
			opts[name] = v
		}
	}
}
