// Package usage compiles a program's help text into a pattern tree and
// classifies raw command-line arguments into the typed tokens the pattern
// package matches against. It is the upstream side of the pipeline: the
// grammar parser, the options-section parser, and the argv classifier.
package usage

import "unicode"

// tokenType defines the kinds of tokens produced by the usage-line scanner.
type tokenType int

const (
	tokenWord     tokenType = iota // command, argument, or option spelling
	tokenLBracket                  // '['
	tokenRBracket                  // ']'
	tokenLParen                    // '('
	tokenRParen                    // ')'
	tokenPipe                      // '|'
	tokenEllipsis                  // '...'
	tokenEOF
)

func (t tokenType) String() string {
	switch t {
	case tokenWord:
		return "word"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenPipe:
		return "'|'"
	case tokenEllipsis:
		return "'...'"
	case tokenEOF:
		return "end of pattern"
	default:
		return "unknown"
	}
}

// token is a single lexical token with its starting position in the source.
type token struct {
	typ  tokenType
	text string
	pos  int
}

// scanner splits one usage-line source into tokens.
type scanner struct {
	input  string
	pos    int
	tokens []token
}

func newScanner(input string) *scanner {
	return &scanner{input: input, tokens: make([]token, 0)}
}

// scan processes the entire input and returns the token list, always
// terminated by an EOF token.
func (s *scanner) scan() []token {
	for s.pos < len(s.input) {
		start := s.pos
		switch c := s.input[s.pos]; {
		case c == '[':
			s.add(tokenLBracket, "[", start)
			s.pos++
		case c == ']':
			s.add(tokenRBracket, "]", start)
			s.pos++
		case c == '(':
			s.add(tokenLParen, "(", start)
			s.pos++
		case c == ')':
			s.add(tokenRParen, ")", start)
			s.pos++
		case c == '|':
			s.add(tokenPipe, "|", start)
			s.pos++
		case s.atEllipsis():
			s.add(tokenEllipsis, "...", start)
			s.pos += 3
		case isSpace(c):
			s.pos++
		default:
			s.scanWord(start)
		}
	}
	s.add(tokenEOF, "", s.pos)
	return s.tokens
}

// scanWord consumes characters until whitespace, a grouping character, or
// an ellipsis. A lone '.' stays part of the word so commands like
// "file.txt" scan as one token.
func (s *scanner) scanWord(start int) {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if isSpace(c) || c == '[' || c == ']' || c == '(' || c == ')' || c == '|' {
			break
		}
		if s.atEllipsis() {
			break
		}
		s.pos++
	}
	s.add(tokenWord, s.input[start:s.pos], start)
}

func (s *scanner) atEllipsis() bool {
	return s.pos+2 < len(s.input) &&
		s.input[s.pos] == '.' && s.input[s.pos+1] == '.' && s.input[s.pos+2] == '.'
}

func (s *scanner) add(typ tokenType, text string, pos int) {
	s.tokens = append(s.tokens, token{typ: typ, text: text, pos: pos})
}

func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}
