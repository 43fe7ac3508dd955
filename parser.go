// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jparse

import "io"

// A Decoder decodes a value of type T from the token cursor of a Parser.
// The decode package provides decoders for the common shapes of JSON data;
// a Decoder for a new type can be written directly in terms of the Parser
// methods and composed freely with the existing ones.
type Decoder[T any] func(*Parser) (T, error)

// Parse decodes a value of type T from src using dec. The whole input must
// be consumed: if tokens remain after dec returns, Parse reports an error
// with kind ExpectedEndOfSource anchored at the first leftover token.
//
// On failure Parse returns the zero value of T and a non-nil error of
// concrete type *Error.
func Parse[T any](src string, dec Decoder[T]) (T, error) {
	var zero T
	p, err := newParser(src)
	if err != nil {
		return zero, err
	}
	v, err := dec(p)
	if err != nil {
		return zero, err
	}
	if p.cur != nil {
		return zero, p.Fail(ExpectedEndOfSource)
	}
	return v, nil
}

// A Parser is a cursor over the token stream of a single input. It exposes
// one token of lookahead through Peek and Check, and retains the most
// recently consumed token for error reporting through Previous.
//
// The methods of a Parser never panic on malformed input: every defect in
// the input is reported as a *Error value. The panics documented on
// Previous and FailPrev signal misuse by a decoder, which is a bug in the
// decoder rather than a property of the input.
type Parser struct {
	sc   *Scanner
	prev *Token // the most recently consumed token, nil before first Advance
	cur  *Token // the current token, nil once the input is exhausted
}

func newParser(src string) (*Parser, error) {
	p := &Parser{sc: NewScanner(src)}
	if err := p.fetch(); err != nil {
		return nil, err
	}
	return p, nil
}

// fetch pulls the next token from the scanner into the cursor, leaving the
// cursor empty at the end of the input.
func (p *Parser) fetch() error {
	tok, err := p.sc.Next()
	if err == io.EOF {
		p.cur = nil
		return nil
	} else if err != nil {
		return err
	}
	p.cur = &tok
	return nil
}

// Peek returns the current token without consuming it. If no tokens remain
// it reports an error with kind UnexpectedEndOfSource.
func (p *Parser) Peek() (Token, error) {
	if p.cur == nil {
		return Token{}, p.Fail(UnexpectedEndOfSource)
	}
	return *p.cur, nil
}

// Check reports whether the current token has the given kind, without
// consuming it. If no tokens remain it reports an error with kind
// UnexpectedEndOfSource.
func (p *Parser) Check(kind Kind) (bool, error) {
	tok, err := p.Peek()
	if err != nil {
		return false, err
	}
	return tok.Kind == kind, nil
}

// Advance consumes and returns the current token. If no tokens remain it
// reports an error with kind UnexpectedEndOfSource; if the text after the
// consumed token is not a valid token, it reports the lexical error.
func (p *Parser) Advance() (Token, error) {
	if p.cur == nil {
		return Token{}, p.Fail(UnexpectedEndOfSource)
	}
	p.prev = p.cur
	if err := p.fetch(); err != nil {
		return Token{}, err
	}
	return *p.prev, nil
}

// Consume verifies that the current token has the given kind, then consumes
// and returns it. If the current token has some other kind, it reports an
// error with kind ExpectedToken whose Want field records the kind that was
// required.
func (p *Parser) Consume(kind Kind) (Token, error) {
	ok, err := p.Check(kind)
	if err != nil {
		return Token{}, err
	} else if !ok {
		e := p.Fail(ExpectedToken)
		e.Want = kind
		return Token{}, e
	}
	return p.Advance()
}

// Previous returns the most recently consumed token. It panics if no token
// has been consumed yet.
func (p *Parser) Previous() Token {
	if p.prev == nil {
		panic("jparse: no previous token")
	}
	return *p.prev
}

// Fail constructs an Error of the given kind anchored at the current token,
// falling back to the previous token when the input is exhausted. If no
// token has been seen at all, the error reports line 1 and an empty lexeme.
func (p *Parser) Fail(kind ErrKind) *Error {
	tok := p.cur
	if tok == nil {
		tok = p.prev
	}
	if tok == nil {
		return &Error{Kind: kind, Line: 1}
	}
	return &Error{Kind: kind, Line: tok.Line, Lexeme: tok.Lexeme}
}

// FailPrev constructs an Error of the given kind anchored at the most
// recently consumed token. Like Previous, it panics if no token has been
// consumed yet.
func (p *Parser) FailPrev(kind ErrKind) *Error {
	return p.FailAt(kind, p.Previous())
}

// FailAt constructs an Error of the given kind anchored at tok.
func (p *Parser) FailAt(kind ErrKind, tok Token) *Error {
	return &Error{Kind: kind, Line: tok.Line, Lexeme: tok.Lexeme}
}
