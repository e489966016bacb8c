package usage

import (
	"fmt"
	"strings"

	"github.com/docline/docline/pattern"
)

// ParseArgv classifies raw command-line arguments into typed leaves ready
// for matching. Options are resolved against the declared set: long
// spellings allow unambiguous prefixes, shorts may be stacked, and a "--"
// turns it and everything after it into positional Arguments. The value a
// token carries follows the option's declared semantics: counting options
// produce a count of one, list options a single-element list.
//
// Errors describe the offending argument and are user errors, not grammar
// errors; the caller decides how to surface them.
func ParseArgv(argv []string, declared []*pattern.Option) ([]pattern.Leaf, error) {
	set := &optionSet{opts: declared}
	var parsed []pattern.Leaf
	for i := 0; i < len(argv); i++ {
		raw := argv[i]
		switch {
		case raw == "--":
			for _, rest := range argv[i:] {
				parsed = append(parsed, positional(rest))
			}
			return parsed, nil
		case strings.HasPrefix(raw, "--"):
			tok, consumed, err := classifyLong(set, raw, argv[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed
			parsed = append(parsed, tok)
		case strings.HasPrefix(raw, "-") && raw != "-":
			toks, consumed, err := classifyShorts(set, raw, argv[i+1:])
			if err != nil {
				return nil, err
			}
			i += consumed
			parsed = append(parsed, toks...)
		default:
			parsed = append(parsed, positional(raw))
		}
	}
	return parsed, nil
}

// positional wraps a raw word in a nameless Argument token.
func positional(raw string) pattern.Leaf {
	return pattern.NewArgument("", pattern.StringValue(raw))
}

// classifyLong resolves one "--name" or "--name=value" argument. It reports
// how many extra argv entries it consumed for the option's argument.
func classifyLong(set *optionSet, raw string, rest []string) (pattern.Leaf, int, error) {
	long, assigned, hasEq := strings.Cut(raw, "=")

	similar := set.withLongPrefix(long)
	if len(similar) == 0 {
		return nil, 0, fmt.Errorf("unknown option: %s", long)
	}
	if len(similar) > 1 {
		names := make([]string, len(similar))
		for i, o := range similar {
			names[i] = o.Long()
		}
		return nil, 0, fmt.Errorf("%s is ambiguous: %s?", long, strings.Join(names, " or "))
	}

	opt := similar[0]
	if opt.ArgCount() == 0 {
		if hasEq {
			return nil, 0, fmt.Errorf("%s must not have an argument", opt.Long())
		}
		return opt.WithValue(flagValue(opt)), 0, nil
	}

	if hasEq {
		return opt.WithValue(argValue(opt, assigned)), 0, nil
	}
	if len(rest) == 0 {
		return nil, 0, fmt.Errorf("%s requires an argument", opt.Long())
	}
	return opt.WithValue(argValue(opt, rest[0])), 1, nil
}

// classifyShorts expands a stacked cluster like "-abc". The first option in
// the cluster that takes an argument consumes the remainder of the cluster,
// or the next argv entry when the cluster ends.
func classifyShorts(set *optionSet, raw string, rest []string) ([]pattern.Leaf, int, error) {
	var parsed []pattern.Leaf
	cluster := raw[1:]
	for i := 0; i < len(cluster); i++ {
		short := "-" + string(cluster[i])
		opt := set.byShort(short)
		if opt == nil {
			return nil, 0, fmt.Errorf("unknown option: %s", short)
		}
		if opt.ArgCount() == 0 {
			parsed = append(parsed, opt.WithValue(flagValue(opt)))
			continue
		}
		if i+1 < len(cluster) {
			parsed = append(parsed, opt.WithValue(argValue(opt, cluster[i+1:])))
			return parsed, 0, nil
		}
		if len(rest) == 0 {
			return nil, 0, fmt.Errorf("%s requires an argument", short)
		}
		parsed = append(parsed, opt.WithValue(argValue(opt, rest[0])))
		return parsed, 1, nil
	}
	return parsed, 0, nil
}

// flagValue is the token value for a zero-arity occurrence.
func flagValue(opt *pattern.Option) pattern.Value {
	if opt.Value().Kind() == pattern.ValueCount {
		return pattern.CountValue(1)
	}
	return pattern.BoolValue(true)
}

// argValue is the token value for an occurrence carrying an argument.
func argValue(opt *pattern.Option, arg string) pattern.Value {
	if opt.Value().Kind() == pattern.ValueList {
		return pattern.ListValue(arg)
	}
	return pattern.StringValue(arg)
}
