// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import "fmt"

// An ErrKind classifies the failure reported by an Error.
type ErrKind byte

// Constants defining the valid ErrKind values.
const (
	// Errors reported while scanning the input text.
	UnterminatedString    ErrKind = iota // a string literal interrupted by a line break
	UnrecognisedSymbol                   // a rune that cannot begin any token
	UnrecognisedLiteral                  // a name other than true, false, or null
	InvalidNumber                        // a malformed number, or one unsuited to its target type
	InvalidEscapeSequence                // a malformed or non-denotable string escape

	// Errors reported while parsing the token stream.
	ExpectedEndOfSource // tokens remain after the top-level value
	ExpectedToken       // a required token kind is absent; see the Want field
	UnexpectedToken     // a token that cannot appear in its position
	UnknownProperty     // an object key not defined by the record schema
	MissingProperty     // a required object key is absent; see the Property field

	// UnexpectedEndOfSource is reported by both phases when the input ends
	// where more is required.
	UnexpectedEndOfSource
)

var errKindStr = [...]string{
	UnterminatedString:    "unterminated string",
	UnrecognisedSymbol:    "unrecognised symbol",
	UnrecognisedLiteral:   "unrecognised literal",
	InvalidNumber:         "invalid number",
	InvalidEscapeSequence: "invalid escape sequence",
	ExpectedEndOfSource:   "expected end of input",
	ExpectedToken:         "expected token",
	UnexpectedToken:       "unexpected token",
	UnknownProperty:       "unknown property",
	MissingProperty:       "missing property",
	UnexpectedEndOfSource: "unexpected end of input",
}

func (k ErrKind) String() string {
	v := int(k)
	if v >= len(errKindStr) {
		return "invalid error kind"
	}
	return errKindStr[v]
}

// An Error is the concrete type of all errors reported by this package for
// defects in the input. It records the kind of failure together with the
// line and raw text of the token at which the failure was detected, so that
// a caller can point at the offending input. Failures that are bugs in a
// decoder rather than defects in the input are reported by panic, not by
// Error values.
type Error struct {
	Kind   ErrKind // the kind of failure
	Line   int     // the 1-based line at which the failure was detected
	Lexeme string  // the raw text at the point of failure

	Want     Kind   // for ExpectedToken, the token kind that was required
	Property string // for MissingProperty, the name of the absent key
}

func (e *Error) Error() string {
	switch e.Kind {
	case ExpectedToken:
		return fmt.Sprintf("line %d: expected %v, got %q", e.Line, e.Want, e.Lexeme)
	case MissingProperty:
		return fmt.Sprintf("line %d: missing property %q", e.Line, e.Property)
	}
	if e.Lexeme == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %v at %q", e.Line, e.Kind, e.Lexeme)
}
