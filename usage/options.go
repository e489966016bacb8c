package usage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docline/docline/pattern"
)

var defaultRe = regexp.MustCompile(`(?i)\[default: (.*)\]`)

// optionSet is the registry of declared options, shared between the usage
// parser and the argv classifier. Options found in the usage pattern but
// not described in the doc are added as they are encountered.
type optionSet struct {
	opts []*pattern.Option
}

func (s *optionSet) add(o *pattern.Option) {
	s.opts = append(s.opts, o)
}

func (s *optionSet) list() []*pattern.Option {
	return s.opts
}

// byShort returns the option declared with the given short spelling.
func (s *optionSet) byShort(short string) *pattern.Option {
	for _, o := range s.opts {
		if o.Short() == short {
			return o
		}
	}
	return nil
}

// withLongPrefix returns the options whose long spelling starts with long.
// An exact spelling always wins over prefixes, so "--ver" stays ambiguous
// between --verbose and --version but "--verbose" is not.
func (s *optionSet) withLongPrefix(long string) []*pattern.Option {
	for _, o := range s.opts {
		if o.Long() == long {
			return []*pattern.Option{o}
		}
	}
	var similar []*pattern.Option
	for _, o := range s.opts {
		if o.Long() != "" && strings.HasPrefix(o.Long(), long) {
			similar = append(similar, o)
		}
	}
	return similar
}

// parseDefaults collects the option descriptions from the doc: every line
// outside the usage section whose first non-space rune is '-'. The usage
// section is delimited by [usageStart, usageEnd) byte offsets into doc.
func parseDefaults(doc string, usageStart, usageEnd int) (*optionSet, error) {
	set := &optionSet{}
	offset := 0
	for _, line := range strings.SplitAfter(doc, "\n") {
		start := offset
		offset += len(line)
		if start >= usageStart && start < usageEnd {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") || trimmed == "-" || trimmed == "--" {
			continue
		}
		opt, err := parseOptionLine(trimmed)
		if err != nil {
			return nil, err
		}
		if opt.Long() != "" {
			if prev := set.withLongPrefix(opt.Long()); len(prev) == 1 && prev[0].Long() == opt.Long() {
				return nil, fmt.Errorf("option %s is declared twice", opt.Long())
			}
		}
		set.add(opt)
	}
	return set, nil
}

// parseOptionLine parses one description line such as
//
//	-o FILE --output=FILE  Output path [default: out.txt]
//
// The spelling part ends at the first run of two spaces; the rest is prose
// that may carry a [default: ...] annotation.
func parseOptionLine(line string) (*pattern.Option, error) {
	spelling, description, _ := strings.Cut(line, "  ")

	var (
		short, long string
		argCount    int
	)
	fields := strings.Fields(strings.NewReplacer(",", " ", "=", " ").Replace(spelling))
	for _, f := range fields {
		switch {
		case strings.HasPrefix(f, "--"):
			long = f
		case strings.HasPrefix(f, "-"):
			short = f
		default:
			argCount = 1
		}
	}
	if short == "" && long == "" {
		return nil, fmt.Errorf("malformed option description: %q", line)
	}

	value := pattern.None
	if argCount == 0 {
		value = pattern.BoolValue(false)
	} else if m := defaultRe.FindStringSubmatch(description); m != nil {
		value = pattern.StringValue(m[1])
	}
	return pattern.NewOption(short, long, argCount, value), nil
}
