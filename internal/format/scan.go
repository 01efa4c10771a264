package format

import (
	"fmt"
)

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

// keywords after which a '/' starts a regular expression and a '<' starts a
// JSX element.
var exprKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "new": true, "delete": true, "void": true,
	"throw": true, "yield": true, "await": true,
}

// scanner walks JavaScript source far enough to pair brackets. It skips
// strings, template literals, comments, regular expressions and JSX text,
// and descends into `${}` and JSX `{}` expressions.
type scanner struct {
	src  string
	i    int
	line int

	prev byte   // last significant character outside comments, 0 at start
	word string // identifier that set prev, if any
}

// checkBalance verifies that (), [] and {} pair up in JavaScript code.
func checkBalance(src string) error {
	s := &scanner{src: src, line: 1}
	return s.code(0, 0)
}

func (s *scanner) peek(off int) byte {
	if s.i+off < len(s.src) {
		return s.src[s.i+off]
	}
	return 0
}

// exprPosition reports whether the next token starts an expression, which
// decides between division and regex, and between less-than and JSX.
func (s *scanner) exprPosition() bool {
	switch s.prev {
	case 0, '(', ',', '=', ':', '[', '!', '&', '|', '?', '{', '}', ';', '+', '-', '*', '%', '<', '>', '~', '^':
		return true
	case 'a':
		return exprKeywords[s.word]
	}
	return false
}

// code scans until the closer of open, or to the end of input when open is 0.
func (s *scanner) code(open byte, openLine int) error {
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\n':
			s.line++
			s.i++
		case c == ' ' || c == '\t' || c == '\r':
			s.i++
		case c == '/' && s.peek(1) == '/':
			for s.i < len(s.src) && s.src[s.i] != '\n' {
				s.i++
			}
		case c == '/' && s.peek(1) == '*':
			if err := s.blockComment(); err != nil {
				return err
			}
		case c == '"' || c == '\'':
			if err := s.quoted(c); err != nil {
				return err
			}
			s.prev, s.word = '"', ""
		case c == '`':
			if err := s.template(); err != nil {
				return err
			}
			s.prev, s.word = '"', ""
		case c == '/' && s.exprPosition():
			if err := s.regex(); err != nil {
				return err
			}
			s.prev, s.word = '"', ""
		case c == '<' && s.exprPosition() && (isIdentStart(s.peek(1)) || s.peek(1) == '>'):
			if err := s.element(); err != nil {
				return err
			}
			s.prev, s.word = '"', ""
		case c == '(' || c == '[' || c == '{':
			s.i++
			s.prev, s.word = c, ""
			if err := s.code(c, s.line); err != nil {
				return err
			}
			s.prev, s.word = closerOf(c), ""
		case c == ')' || c == ']' || c == '}':
			if open == 0 || closers[c] != open {
				return fmt.Errorf("unexpected %q at line %d", c, s.line)
			}
			s.i++
			return nil
		case isIdentStart(c) || isDigit(c):
			start := s.i
			for s.i < len(s.src) && (isIdentStart(s.src[s.i]) || isDigit(s.src[s.i])) {
				s.i++
			}
			s.prev, s.word = 'a', s.src[start:s.i]
		default:
			s.prev, s.word = c, ""
			s.i++
		}
	}
	if open != 0 {
		return fmt.Errorf("unclosed %q opened at line %d", open, openLine)
	}
	return nil
}

func (s *scanner) blockComment() error {
	start := s.line
	s.i += 2
	for ; s.i < len(s.src); s.i++ {
		if s.src[s.i] == '\n' {
			s.line++
		}
		if s.src[s.i] == '*' && s.peek(1) == '/' {
			s.i += 2
			return nil
		}
	}
	return fmt.Errorf("unterminated comment at line %d", start)
}

// quoted skips a '...' or "..." literal. A backslash continues it onto the
// next line.
func (s *scanner) quoted(q byte) error {
	start := s.line
	for s.i++; s.i < len(s.src); s.i++ {
		switch s.src[s.i] {
		case '\\':
			if s.peek(1) == '\n' {
				s.line++
			}
			s.i++
		case '\n':
			return fmt.Errorf("unterminated string at line %d", start)
		case q:
			s.i++
			return nil
		}
	}
	return fmt.Errorf("unterminated string at line %d", start)
}

func (s *scanner) template() error {
	start := s.line
	for s.i++; s.i < len(s.src); s.i++ {
		switch s.src[s.i] {
		case '\\':
			s.i++
		case '\n':
			s.line++
		case '`':
			s.i++
			return nil
		case '$':
			if s.peek(1) == '{' {
				s.i += 2
				s.prev, s.word = '{', ""
				if err := s.code('{', s.line); err != nil {
					return err
				}
				s.i--
			}
		}
	}
	return fmt.Errorf("unterminated string at line %d", start)
}

// regex skips a regular expression literal and its flags. A '/' inside a
// character class does not end it.
func (s *scanner) regex() error {
	start := s.line
	inClass := false
	for s.i++; s.i < len(s.src); s.i++ {
		switch s.src[s.i] {
		case '\\':
			s.i++
		case '\n':
			return fmt.Errorf("unterminated regular expression at line %d", start)
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if inClass {
				continue
			}
			s.i++
			for s.i < len(s.src) && isIdentStart(s.src[s.i]) {
				s.i++
			}
			return nil
		}
	}
	return fmt.Errorf("unterminated regular expression at line %d", start)
}

// element skips a JSX element: its tag, attributes and children. Text
// between tags is not code, so quotes there are ordinary characters.
func (s *scanner) element() error {
	start := s.line
	s.i++
	if s.peek(0) == '>' {
		s.i++
		return s.children("<>", start)
	}
	nameStart := s.i
	for s.i < len(s.src) && (isIdentStart(s.src[s.i]) || isDigit(s.src[s.i]) || s.src[s.i] == '.' || s.src[s.i] == ':' || s.src[s.i] == '-') {
		s.i++
	}
	name := s.src[nameStart:s.i]

	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\n':
			s.line++
			s.i++
		case c == '/' && s.peek(1) == '>':
			s.i += 2
			return nil
		case c == '>':
			s.i++
			return s.children(name, start)
		case c == '"' || c == '\'':
			if err := s.attrString(c); err != nil {
				return err
			}
		case c == '{':
			s.i++
			s.prev, s.word = '{', ""
			if err := s.code('{', s.line); err != nil {
				return err
			}
		default:
			s.i++
		}
	}
	return fmt.Errorf("unclosed <%s> opened at line %d", name, start)
}

// attrString skips a JSX attribute value, which may span lines.
func (s *scanner) attrString(q byte) error {
	start := s.line
	for s.i++; s.i < len(s.src); s.i++ {
		switch s.src[s.i] {
		case '\n':
			s.line++
		case q:
			s.i++
			return nil
		}
	}
	return fmt.Errorf("unterminated string at line %d", start)
}

func (s *scanner) children(name string, start int) error {
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\n':
			s.line++
			s.i++
		case c == '{':
			s.i++
			s.prev, s.word = '{', ""
			if err := s.code('{', s.line); err != nil {
				return err
			}
		case c == '<' && s.peek(1) == '/':
			s.i += 2
			for s.i < len(s.src) && s.src[s.i] != '>' {
				s.i++
			}
			if s.i == len(s.src) {
				return fmt.Errorf("unclosed <%s> opened at line %d", name, start)
			}
			s.i++
			return nil
		case c == '<':
			if err := s.element(); err != nil {
				return err
			}
		default:
			s.i++
		}
	}
	return fmt.Errorf("unclosed <%s> opened at line %d", name, start)
}

func closerOf(open byte) byte {
	for c, o := range closers {
		if o == open {
			return c
		}
	}
	return 0
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
