package scanner

import (
	"os"

	"github.com/cockroachdb/errors"
)

// Scanner is a lexical scanner for Quill source text.
// It owns an immutable byte buffer and walks it with a cursor and a
// one byte lookahead, producing one token per Scan call.
type Scanner struct {
	input   []byte
	pos     int  // index of the current byte
	readPos int  // index of the next byte to read, always pos+1 once primed
	ch      byte // current byte, eof once the cursor is past the end of input
}

// New returns a new instance of Scanner over the given source text.
func New(input string) *Scanner {
	s := Scanner{input: []byte(input)}
	s.read()
	return &s
}

// NewFromFile eagerly reads the whole file at path and returns a scanner
// over its contents. This is the only operation in the package that can fail.
func NewFromFile(path string) (*Scanner, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read source file %q", path)
	}

	s := Scanner{input: src}
	s.read()
	return &s, nil
}

// Scan returns the next token from the input. ok reports whether a token was
// produced: it is false both when the whole input has been consumed and when
// the current byte matches no scanning rule. The two cases are deliberately
// indistinguishable; an unrecognized byte is skipped silently and scanning
// can resume with the next call.
// Scan always advances the cursor past the consumed lexeme, including any
// whitespace skipped on the way in.
func (s *Scanner) Scan() (TokenInfo, bool) {
	s.skipWhitespace()

	ti, ok := s.scanToken()
	s.read()
	return ti, ok
}

func (s *Scanner) scanToken() (TokenInfo, bool) {
	// Idents, keywords and numbers first, then individual characters.
	switch ch := s.ch; {
	case ch == eof:
		return TokenInfo{}, false
	case isLetter(ch) || ch == '_':
		lit := s.scanIdent()
		if tok := Lookup(lit); tok != IDENT {
			return TokenInfo{Tok: tok}, true
		}
		return TokenInfo{Tok: IDENT, Lit: lit}, true
	case isDigit(ch):
		return TokenInfo{Tok: NUMBER, Lit: s.scanNumber()}, true
	}

	switch s.ch {
	case '+':
		return TokenInfo{Tok: ADD}, true
	case '-':
		return TokenInfo{Tok: SUB}, true
	case '*':
		return TokenInfo{Tok: MUL}, true
	case '/':
		return TokenInfo{Tok: DIV}, true
	case '%':
		return TokenInfo{Tok: MOD}, true
	case '&':
		return TokenInfo{Tok: AND}, true
	case '|':
		return TokenInfo{Tok: OR}, true
	case '>':
		if s.peek() == '=' {
			s.read()
			return TokenInfo{Tok: GTE}, true
		}
		return TokenInfo{Tok: GT}, true
	case '=':
		if s.peek() == '=' {
			s.read()
			return TokenInfo{Tok: EQ}, true
		}
		return TokenInfo{Tok: ASSIGN}, true
	case '!':
		if s.peek() == '=' {
			s.read()
			return TokenInfo{Tok: NEQ}, true
		}
		return TokenInfo{Tok: NOT}, true
	case '<':
		if s.peek() == '=' {
			s.read()
			return TokenInfo{Tok: LTE}, true
		}
		return TokenInfo{Tok: LT}, true
	case ';':
		return TokenInfo{Tok: SEMICOLON}, true
	case ':':
		return TokenInfo{Tok: COLON}, true
	case ',':
		return TokenInfo{Tok: COMMA}, true
	case '(':
		return TokenInfo{Tok: LPAREN}, true
	case ')':
		return TokenInfo{Tok: RPAREN}, true
	case '{':
		return TokenInfo{Tok: LBRACKET}, true
	case '}':
		return TokenInfo{Tok: RBRACKET}, true
	case '[':
		return TokenInfo{Tok: LSBRACKET}, true
	case ']':
		return TokenInfo{Tok: RSBRACKET}, true
	case '?':
		return TokenInfo{Tok: COMMENT, Lit: s.scanComment()}, true
	}

	return TokenInfo{}, false
}

// read advances the cursor by one byte.
func (s *Scanner) read() {
	if s.readPos >= len(s.input) {
		s.ch = eof
	} else {
		s.ch = s.input[s.readPos]
	}

	s.pos = s.readPos
	s.readPos++
}

// peek returns the byte after the cursor without consuming it.
func (s *Scanner) peek() byte {
	if s.readPos >= len(s.input) {
		return eof
	}
	return s.input[s.readPos]
}

// skipWhitespace consumes all contiguous whitespace under the cursor.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.read()
	}
}

// scanIdent consumes a maximal run of letters and underscores.
// Digits are not valid in Quill identifiers.
func (s *Scanner) scanIdent() string {
	start := s.pos
	for {
		if ch := s.peek(); !isLetter(ch) && ch != '_' {
			break
		}
		s.read()
	}
	return string(s.input[start : s.pos+1])
}

// scanNumber consumes a maximal run of digits, optionally followed by a
// decimal point and a further run of digits. A trailing '.' with no
// fractional digits stays part of the literal.
func (s *Scanner) scanNumber() string {
	start := s.pos
	s.scanDigits()
	if s.peek() == '.' {
		s.read()
		s.scanDigits()
	}
	return string(s.input[start : s.pos+1])
}

// scanDigits consumes a contiguous series of digits.
func (s *Scanner) scanDigits() {
	for isDigit(s.peek()) {
		s.read()
	}
}

// scanComment consumes a line comment. The captured text includes the leading
// '?' and stops just before the next newline or the end of input.
func (s *Scanner) scanComment() string {
	start := s.pos
	for {
		if ch := s.peek(); ch == '\n' || ch == eof {
			break
		}
		s.read()
	}
	return string(s.input[start : s.pos+1])
}

// isWhitespace returns true if the byte is an ASCII whitespace character.
func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

// isLetter returns true if the byte is an ASCII letter.
func isLetter(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

// isDigit returns true if the byte is an ASCII digit.
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// eof is a marker byte to signify that the scanner can't read any more.
const eof = byte(0)
