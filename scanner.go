// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Scanner reads lexical tokens from an input string. Each call to Next
// advances the scanner to the next token, or reports an error.
type Scanner struct {
	src   string
	start int // offset of the start of the current token
	pos   int // offset of the first unconsumed rune
	line  int // current line number (1-based)
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Next returns the next token of the input, or reports an error. At the end
// of the input, Next returns io.EOF. All other errors have concrete type
// *Error.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return Token{}, io.EOF
	}
	s.start = s.pos

	ch, _ := s.advance()
	switch {
	case ch == '-' || isDigit(ch):
		return s.scanNumber()
	case unicode.IsLetter(ch):
		return s.scanName()
	case ch == '"':
		return s.scanString()
	}
	if k, ok := selfDelim(ch); ok {
		return s.make(k), nil
	}
	return Token{}, s.fail(UnrecognisedSymbol)
}

// scanNumber scans the remainder of a number whose leading digit or sign has
// already been consumed. The scanner does not type the value: magnitude and
// representation checks belong to the consumer of the token.
func (s *Scanner) scanNumber() (Token, error) {
	s.readWhile(isDigit)

	if s.match('.') {
		s.readWhile(isDigit)
	}

	if ch, ok := s.peek(); ok {
		if ch == 'e' || ch == 'E' {
			s.advance()
			if ch, ok := s.peek(); ok && (ch == '-' || ch == '+') {
				s.advance()
			}
			if s.readWhile(isDigit) == 0 {
				return Token{}, s.fail(InvalidNumber)
			}
		} else if unicode.IsLetter(ch) {
			return Token{}, s.fail(InvalidNumber)
		}
	}

	// A sign with no digits at all is not a number.
	if s.lexeme() == "-" {
		return Token{}, s.fail(InvalidNumber)
	}
	return s.make(Number), nil
}

// scanString scans the remainder of a string literal whose opening quote has
// already been consumed, decoding escape sequences into the token value as
// it goes.
func (s *Scanner) scanString() (Token, error) {
	var buf strings.Builder
	for {
		ch, ok := s.advance()
		if !ok {
			return Token{}, s.fail(UnexpectedEndOfSource)
		}
		switch ch {
		case '"':
			tok := s.make(String)
			tok.Value = buf.String()
			return tok, nil
		case '\n':
			return Token{}, s.fail(UnterminatedString)
		case '\\':
			dec, err := s.scanEscape()
			if err != nil {
				return Token{}, err
			}
			buf.WriteRune(dec)
		default:
			buf.WriteRune(ch)
		}
	}
}

// scanEscape decodes a single escape sequence whose leading backslash has
// already been consumed, and returns the rune it denotes.
func (s *Scanner) scanEscape() (rune, error) {
	ch, ok := s.advance()
	if !ok {
		return 0, s.fail(UnexpectedEndOfSource)
	}
	switch ch {
	case '"', '\\', '/':
		return ch, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return s.scanHex4()
	}
	return 0, s.fail(InvalidEscapeSequence)
}

// scanHex4 decodes the four hex digits of a "\u" escape into the rune they
// denote. Code points outside the Unicode scalar range, such as surrogate
// halves, are not denotable and are reported as errors.
func (s *Scanner) scanHex4() (rune, error) {
	hp := s.pos
	for i := 0; i < 4; i++ {
		if _, ok := s.advance(); !ok {
			return 0, s.fail(UnexpectedEndOfSource)
		}
	}
	v, err := strconv.ParseUint(s.src[hp:s.pos], 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, s.fail(InvalidEscapeSequence)
	}
	return rune(v), nil
}

// scanName scans the remainder of a bare name whose leading letter has
// already been consumed. The only valid names are the three constants.
func (s *Scanner) scanName() (Token, error) {
	s.readWhile(unicode.IsLetter)
	switch s.lexeme() {
	case "null":
		return s.make(Null), nil
	case "true", "false":
		return s.make(Bool), nil
	}
	return Token{}, s.fail(UnrecognisedLiteral)
}

// skipSpace discards whitespace, counting lines as it goes.
func (s *Scanner) skipSpace() {
	for {
		ch, ok := s.peek()
		if !ok {
			return
		}
		switch ch {
		case ' ', '\t', '\r':
			// discard
		case '\n':
			s.line++
		default:
			return
		}
		s.advance()
	}
}

// peek reports the next rune of the input without consuming it.
func (s *Scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return ch, true
}

// advance consumes and returns the next rune of the input, moving the scan
// position by the full encoded width of the rune.
func (s *Scanner) advance() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch, nb := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += nb
	return ch, true
}

// match consumes the next rune and reports true if it is want, otherwise it
// consumes nothing and reports false.
func (s *Scanner) match(want rune) bool {
	if ch, ok := s.peek(); ok && ch == want {
		s.advance()
		return true
	}
	return false
}

// readWhile consumes runes matching f until the end of input or until a
// rune not matching f is found, and reports the number of runes consumed.
func (s *Scanner) readWhile(f func(rune) bool) int {
	var nr int
	for {
		ch, ok := s.peek()
		if !ok || !f(ch) {
			return nr
		}
		s.advance()
		nr++
	}
}

// lexeme returns the raw text of the token being scanned.
func (s *Scanner) lexeme() string { return s.src[s.start:s.pos] }

func (s *Scanner) make(kind Kind) Token {
	return Token{Kind: kind, Line: s.line, Lexeme: s.lexeme()}
}

func (s *Scanner) fail(kind ErrKind) *Error {
	return &Error{Kind: kind, Line: s.line, Lexeme: s.lexeme()}
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch rune) (Kind, bool) {
	i := strings.IndexRune("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
