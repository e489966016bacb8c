package pattern

import "fmt"

// Match attempts to satisfy p against the tokens in remaining, carrying the
// bindings accumulated so far in collected. On success it returns the
// leftover tokens, the grown binding list, and true; on a normal match
// failure it returns its inputs unchanged and false.
//
// Both lists are threaded as values: Match never mutates a slice it was
// given, so the caller's copies stay valid and alternative branches can be
// explored from the same starting state. Callers start with a nil collected
// list.
//
// Match panics if a OneOrMore node does not have exactly one child. That is
// a malformed pattern tree from the grammar parser, not a property of the
// input, and must not be mistaken for a failed match.
func Match(p Pattern, remaining, collected []Leaf) ([]Leaf, []Leaf, bool) {
	switch pat := p.(type) {
	case *Argument:
		return matchLeaf(pat, remaining, collected)
	case *Command:
		return matchLeaf(pat, remaining, collected)
	case *Option:
		return matchLeaf(pat, remaining, collected)
	case *Required:
		return matchRequired(pat, remaining, collected)
	case *Optional:
		return matchOptional(pat.children, remaining, collected)
	case *AnyOptions:
		// Matched as an empty Optional: always succeeds, consumes nothing.
		return matchOptional(nil, remaining, collected)
	case *Either:
		return matchEither(pat, remaining, collected)
	case *OneOrMore:
		return matchOneOrMore(pat, remaining, collected)
	default:
		panic(fmt.Sprintf("pattern: unknown pattern variant %T", p))
	}
}

// matchLeaf scans remaining for a token satisfying the leaf, splices the
// found token out, and folds the resolved binding into collected.
func matchLeaf(leaf Leaf, remaining, collected []Leaf) ([]Leaf, []Leaf, bool) {
	at, resolved, ok := scan(leaf, remaining)
	if !ok {
		return remaining, collected, false
	}
	rest := make([]Leaf, 0, len(remaining)-1)
	rest = append(rest, remaining[:at]...)
	rest = append(rest, remaining[at+1:]...)
	return rest, mergeBinding(resolved, collected), true
}

// scan looks left-to-right for the first token qualifying for the requested
// leaf and returns its index along with a resolved leaf that keeps the
// requested leaf's name but carries the found token's value.
func scan(target Leaf, remaining []Leaf) (int, Leaf, bool) {
	switch t := target.(type) {
	case *Argument:
		// Purely positional: the first Argument token wins, names ignored.
		for i, tok := range remaining {
			if tok.Kind() == KindArgument {
				return i, t.WithValue(tok.Value()), true
			}
		}
	case *Command:
		// The first Argument token reached decides; a value mismatch is a
		// failure, not a reason to keep scanning.
		for i, tok := range remaining {
			if tok.Kind() != KindArgument {
				continue
			}
			v := tok.Value()
			if v.Kind() == ValueString && v.Str() == t.name {
				return i, t.WithValue(BoolValue(true)), true
			}
			return 0, nil, false
		}
	case *Option:
		for i, tok := range remaining {
			if tok.Kind() == KindOption && tok.(*Option).Name() == t.Name() {
				return i, t.WithValue(tok.Value()), true
			}
		}
	}
	return 0, nil, false
}

// mergeBinding folds a resolved leaf into the collected list. Count values
// increment the first same-named entry, list values concatenate onto it,
// and everything else appends a fresh entry even when the name recurs.
// Entries with unrelated names are always preserved.
func mergeBinding(leaf Leaf, collected []Leaf) []Leaf {
	switch leaf.Value().Kind() {
	case ValueCount:
		at := firstNamed(collected, leaf.Name())
		if at < 0 {
			return appendLeaf(collected, leaf.WithValue(CountValue(1)))
		}
		prev := collected[at]
		return replaceAt(collected, at, prev.WithValue(CountValue(prev.Value().Count()+1)))
	case ValueList:
		at := firstNamed(collected, leaf.Name())
		if at < 0 {
			return appendLeaf(collected, leaf)
		}
		prev := collected[at]
		merged := append(prev.Value().List(), leaf.Value().List()...)
		return replaceAt(collected, at, prev.WithValue(ListValue(merged...)))
	default:
		return appendLeaf(collected, leaf)
	}
}

func firstNamed(collected []Leaf, name string) int {
	for i, c := range collected {
		if c.Name() == name {
			return i
		}
	}
	return -1
}

func appendLeaf(collected []Leaf, leaf Leaf) []Leaf {
	out := make([]Leaf, 0, len(collected)+1)
	out = append(out, collected...)
	return append(out, leaf)
}

func replaceAt(collected []Leaf, at int, leaf Leaf) []Leaf {
	out := make([]Leaf, len(collected))
	copy(out, collected)
	out[at] = leaf
	return out
}

// matchRequired threads the state through every child and fails fast on the
// first child that does not match.
func matchRequired(r *Required, remaining, collected []Leaf) ([]Leaf, []Leaf, bool) {
	rem, coll := remaining, collected
	for _, child := range r.children {
		var ok bool
		rem, coll, ok = Match(child, rem, coll)
		if !ok {
			return remaining, collected, false
		}
	}
	return rem, coll, true
}

// matchOptional attempts every child and carries the pre-child state past
// any that fail. It never reports failure.
func matchOptional(children []Pattern, remaining, collected []Leaf) ([]Leaf, []Leaf, bool) {
	rem, coll := remaining, collected
	for _, child := range children {
		if r, c, ok := Match(child, rem, coll); ok {
			rem, coll = r, c
		}
	}
	return rem, coll, true
}

// matchEither tries every child from the same starting state and keeps the
// successful one that left the fewest tokens. The strict less-than keeps
// the earliest child on ties.
func matchEither(e *Either, remaining, collected []Leaf) ([]Leaf, []Leaf, bool) {
	var (
		found             bool
		bestRem, bestColl []Leaf
	)
	for _, child := range e.children {
		rem, coll, ok := Match(child, remaining, collected)
		if !ok {
			continue
		}
		if !found || len(rem) < len(bestRem) {
			found, bestRem, bestColl = true, rem, coll
		}
	}
	if !found {
		return remaining, collected, false
	}
	return bestRem, bestColl, true
}

// matchOneOrMore repeats the single child until it fails or stops consuming
// input. A failure on the very first attempt fails the whole node; later
// failures keep the progress already made. The progress guard stops
// children that succeed without consuming, such as an Optional.
func matchOneOrMore(o *OneOrMore, remaining, collected []Leaf) ([]Leaf, []Leaf, bool) {
	if len(o.children) != 1 {
		panic(fmt.Sprintf("pattern: OneOrMore requires exactly one child, got %d", len(o.children)))
	}
	child := o.children[0]

	rem, coll := remaining, collected
	matched := false
	for {
		before := len(rem)
		r, c, ok := Match(child, rem, coll)
		if !ok {
			break
		}
		matched = true
		rem, coll = r, c
		if len(rem) == before {
			break
		}
	}
	if !matched {
		return remaining, collected, false
	}
	return rem, coll, true
}
