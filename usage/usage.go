package usage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docline/docline/pattern"
)

var (
	usageLabelRe   = regexp.MustCompile(`(?i)usage:`)
	sectionBreakRe = regexp.MustCompile(`\n[ \t]*\n`)
)

// Spec is a compiled help text: the pattern tree for the usage section, the
// declared options, and the raw usage text for diagnostics.
type Spec struct {
	Name    string // program name, the first word of the usage section
	Pattern pattern.Pattern
	Options []*pattern.Option
	Usage   string // the verbatim usage section
}

// Parse compiles a help text. The doc must contain exactly one section
// introduced by "usage:" (case-insensitive) and ending at the first blank
// line; every line in it starts with the program name and describes one way
// to invoke it. Lines elsewhere in the doc that start with '-' describe
// options. Errors report a malformed grammar, not bad user input.
func Parse(doc string) (*Spec, error) {
	start, end, err := usageSection(doc)
	if err != nil {
		return nil, err
	}
	usageText := doc[start:end]

	opts, err := parseDefaults(doc, start, end)
	if err != nil {
		return nil, err
	}

	name, sources, err := splitUsage(usageText)
	if err != nil {
		return nil, err
	}

	lines := make([]pattern.Pattern, len(sources))
	for i, source := range sources {
		p := newParser(newScanner(source).scan(), opts)
		children, err := p.parseLine()
		if err != nil {
			return nil, fmt.Errorf("in usage line %q: %w", strings.TrimSpace(source), err)
		}
		lines[i] = groupRequired(children)
	}

	root := lines[0]
	if len(lines) > 1 {
		root = pattern.NewEither(lines...)
	}
	fixRepeating(root)

	return &Spec{
		Name:    name,
		Pattern: root,
		Options: opts.list(),
		Usage:   usageText,
	}, nil
}

// usageSection locates the usage section and returns its byte span in doc.
func usageSection(doc string) (int, int, error) {
	labels := usageLabelRe.FindAllStringIndex(doc, -1)
	switch len(labels) {
	case 0:
		return 0, 0, fmt.Errorf(`no "usage:" section found`)
	case 1:
	default:
		return 0, 0, fmt.Errorf(`more than one "usage:" section found`)
	}

	start := labels[0][0]
	if brk := sectionBreakRe.FindStringIndex(doc[start:]); brk != nil {
		return start, start + brk[0], nil
	}
	return start, len(doc), nil
}

// splitUsage strips the "usage:" label and splits the section into one
// pattern source per usage line, using recurrences of the program name as
// the separator. An empty source is valid and matches an empty invocation.
func splitUsage(usageText string) (string, []string, error) {
	body := usageText[len("usage:"):]
	words := strings.Fields(body)
	if len(words) == 0 {
		return "", nil, fmt.Errorf("usage section gives no program name")
	}

	name := words[0]
	var (
		sources []string
		current []string
	)
	for _, w := range words[1:] {
		if w == name {
			sources = append(sources, strings.Join(current, " "))
			current = current[:0]
			continue
		}
		current = append(current, w)
	}
	sources = append(sources, strings.Join(current, " "))
	return name, sources, nil
}
