package usage

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/docline/docline/pattern"
)

// parser is a recursive-descent parser over one usage-line token stream.
// It resolves option spellings against the shared option registry, adding
// options that appear in the pattern without a description.
type parser struct {
	tokens []token
	pos    int
	opts   *optionSet
}

func newParser(tokens []token, opts *optionSet) *parser {
	return &parser{tokens: tokens, opts: opts}
}

func (p *parser) current() token { return p.tokens[p.pos] }

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.typ != tokenEOF {
		p.pos++
	}
	return tok
}

// parseLine parses a whole usage line and requires the stream to be fully
// consumed; a dangling ')' or ']' means unbalanced grouping.
func (p *parser) parseLine() ([]pattern.Pattern, error) {
	children, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.typ != tokenEOF {
		return nil, fmt.Errorf("unexpected %s at column %d", tok.typ, tok.pos+1)
	}
	return children, nil
}

// parseExpr parses alternation: seq ( '|' seq )*.
func (p *parser) parseExpr() ([]pattern.Pattern, error) {
	seq, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	if p.current().typ != tokenPipe {
		return seq, nil
	}

	branches := []pattern.Pattern{groupRequired(seq)}
	for p.current().typ == tokenPipe {
		p.advance()
		seq, err = p.parseSeq()
		if err != nil {
			return nil, err
		}
		branches = append(branches, groupRequired(seq))
	}
	return []pattern.Pattern{pattern.NewEither(branches...)}, nil
}

// parseSeq parses atoms until the sequence ends at '|', ')', ']', or EOF.
// A trailing '...' wraps the preceding atom in OneOrMore.
func (p *parser) parseSeq() ([]pattern.Pattern, error) {
	var result []pattern.Pattern
	for {
		switch p.current().typ {
		case tokenEOF, tokenRParen, tokenRBracket, tokenPipe:
			return result, nil
		}
		atoms, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		if p.current().typ == tokenEllipsis {
			p.advance()
			atoms = []pattern.Pattern{pattern.NewOneOrMore(groupRequired(atoms))}
		}
		result = append(result, atoms...)
	}
}

// parseAtom parses a single grouping, leaf, or option cluster. It returns a
// slice because stacked shorts like "-ab" expand to several option leaves.
func (p *parser) parseAtom() ([]pattern.Pattern, error) {
	tok := p.current()
	switch tok.typ {
	case tokenLParen:
		p.advance()
		children, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current().typ != tokenRParen {
			return nil, fmt.Errorf("unmatched '(' at column %d", tok.pos+1)
		}
		p.advance()
		return []pattern.Pattern{pattern.NewRequired(children...)}, nil

	case tokenLBracket:
		p.advance()
		children, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.current().typ != tokenRBracket {
			return nil, fmt.Errorf("unmatched '[' at column %d", tok.pos+1)
		}
		p.advance()
		return []pattern.Pattern{pattern.NewOptional(children...)}, nil

	case tokenWord:
		p.advance()
		switch {
		case tok.text == "options":
			return []pattern.Pattern{pattern.NewAnyOptions()}, nil
		case tok.text == "-" || tok.text == "--":
			return []pattern.Pattern{pattern.NewCommand(tok.text)}, nil
		case strings.HasPrefix(tok.text, "--"):
			return p.parseLong(tok)
		case strings.HasPrefix(tok.text, "-"):
			return p.parseShorts(tok)
		case isArgumentWord(tok.text):
			return []pattern.Pattern{pattern.NewArgument(tok.text, pattern.None)}, nil
		default:
			return []pattern.Pattern{pattern.NewCommand(tok.text)}, nil
		}

	default:
		return nil, fmt.Errorf("unexpected %s at column %d", tok.typ, tok.pos+1)
	}
}

// parseLong resolves a "--name" or "--name=<value>" word against the
// registry. Unknown long options are registered with an arity deduced from
// the '=' form.
func (p *parser) parseLong(tok token) ([]pattern.Pattern, error) {
	long, _, hasEq := strings.Cut(tok.text, "=")

	similar := p.opts.withLongPrefix(long)
	if len(similar) > 1 {
		names := make([]string, len(similar))
		for i, o := range similar {
			names[i] = o.Long()
		}
		return nil, fmt.Errorf("%s is ambiguous: %s?", long, strings.Join(names, " or "))
	}
	if len(similar) == 0 {
		argCount := 0
		if hasEq {
			argCount = 1
		}
		opt := pattern.NewOption("", long, argCount, pattern.None)
		p.opts.add(opt)
		return []pattern.Pattern{opt}, nil
	}

	opt := similar[0]
	if opt.ArgCount() == 0 && hasEq {
		return nil, fmt.Errorf("%s must not have an argument", opt.Long())
	}
	if opt.ArgCount() == 1 && !hasEq {
		// the argument placeholder is written as the next word
		next := p.current()
		if next.typ != tokenWord {
			return nil, fmt.Errorf("%s requires an argument", opt.Long())
		}
		p.advance()
	}
	return []pattern.Pattern{opt}, nil
}

// parseShorts expands a cluster like "-abc" into its option leaves.
// Unknown shorts are registered as zero-arity options.
func (p *parser) parseShorts(tok token) ([]pattern.Pattern, error) {
	var result []pattern.Pattern
	cluster := tok.text[1:]
	for i := 0; i < len(cluster); i++ {
		short := "-" + string(cluster[i])
		opt := p.opts.byShort(short)
		if opt == nil {
			opt = pattern.NewOption(short, "", 0, pattern.None)
			p.opts.add(opt)
		} else if opt.ArgCount() == 1 {
			// the rest of the cluster, or the next word, is its placeholder
			if i+1 >= len(cluster) {
				next := p.current()
				if next.typ != tokenWord {
					return nil, fmt.Errorf("%s requires an argument", short)
				}
				p.advance()
			}
			result = append(result, opt)
			return result, nil
		}
		result = append(result, opt)
	}
	return result, nil
}

// groupRequired wraps a multi-pattern sequence in a Required group so the
// result can stand alone as one alternative or repetition body.
func groupRequired(seq []pattern.Pattern) pattern.Pattern {
	if len(seq) == 1 {
		return seq[0]
	}
	return pattern.NewRequired(seq...)
}

// isArgumentWord reports whether a usage word names a positional argument:
// either "<bracketed>" or ALLCAPS with at least one letter.
func isArgumentWord(word string) bool {
	if strings.HasPrefix(word, "<") && strings.HasSuffix(word, ">") {
		return true
	}
	hasLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
