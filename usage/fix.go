package usage

import "github.com/docline/docline/pattern"

// fixRepeating gives counting or list semantics to every leaf that can
// match more than once within a single alternative: a zero-arity option
// becomes count-valued, anything that carries text becomes list-valued.
// The matcher's accumulator only merges count and list values, so this is
// what makes repeated occurrences fold into one binding.
func fixRepeating(root pattern.Pattern) {
	for _, group := range alternatives(root) {
		counts := make(map[string]int)
		for _, leaf := range group {
			counts[leaf.Name()]++
		}
		for _, leaf := range group {
			if counts[leaf.Name()] < 2 {
				continue
			}
			switch l := leaf.(type) {
			case *pattern.Argument:
				l.SetValue(pattern.ListValue())
			case *pattern.Option:
				if l.ArgCount() == 0 {
					l.SetValue(pattern.CountValue(0))
				} else {
					l.SetValue(pattern.ListValue())
				}
			}
		}
	}
}

// alternatives expands the tree into its flat alternatives: one leaf
// multiset per way the grammar can be satisfied. Either fans a group out
// per branch; the children of a OneOrMore are doubled so its leaves always
// count as repeating.
func alternatives(root pattern.Pattern) [][]pattern.Leaf {
	var result [][]pattern.Leaf
	groups := [][]pattern.Pattern{{root}}
	for len(groups) > 0 {
		group := groups[0]
		groups = groups[1:]

		at := -1
		for i, p := range group {
			if _, ok := p.(pattern.Leaf); !ok {
				at = i
				break
			}
		}
		if at < 0 {
			leaves := make([]pattern.Leaf, len(group))
			for i, p := range group {
				leaves[i] = p.(pattern.Leaf)
			}
			result = append(result, leaves)
			continue
		}

		rest := make([]pattern.Pattern, 0, len(group)-1)
		rest = append(rest, group[:at]...)
		rest = append(rest, group[at+1:]...)

		switch head := group[at].(type) {
		case *pattern.Either:
			for _, branch := range head.Children() {
				groups = append(groups, concat([]pattern.Pattern{branch}, rest))
			}
		case *pattern.OneOrMore:
			children := head.Children()
			groups = append(groups, concat(children, children, rest))
		case *pattern.AnyOptions:
			groups = append(groups, rest)
		case pattern.Composite:
			groups = append(groups, concat(head.Children(), rest))
		}
	}
	return result
}

func concat(parts ...[]pattern.Pattern) []pattern.Pattern {
	var out []pattern.Pattern
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}
