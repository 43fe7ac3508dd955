// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

// Kind is the lexical class of a token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
	Number              // number literal
	Bool                // constant: true or false
	Null                // constant: null

	// Do not modify the order of these constants without updating the
	// self-delimiting token check in the scanner.
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	Bool:    "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical element of the input. A Token is a value and
// remains valid after the scanner or parser that produced it has advanced.
type Token struct {
	Kind   Kind   // the lexical class of the token
	Line   int    // the 1-based line of input on which the token begins
	Lexeme string // the raw (undecoded) text of the token

	// For String tokens, Value is the decoded content of the literal, with
	// the quotation marks removed and escape sequences replaced by the text
	// they denote. For all other kinds Value is empty.
	Value string
}
