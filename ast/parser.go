// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jparse"
	"github.com/creachadair/jparse/decode"
)

// Parse decodes a value tree from a string containing one JSON value.
func Parse(src string) (Value, error) { return jparse.Parse(src, Decode) }

// Decode decodes a single value of any shape from p. It is a
// jparse.Decoder for Value, and composes with the combinators of the
// decode package wherever part of an input has no fixed shape.
func Decode(p *jparse.Parser) (Value, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case jparse.LBrace:
		v, err := decode.Map(Decode)(p)
		if err != nil {
			return nil, err
		}
		return Object(v), nil
	case jparse.LSquare:
		v, err := decode.Slice(Decode)(p)
		if err != nil {
			return nil, err
		}
		return Array(v), nil
	case jparse.String:
		v, err := decode.String(p)
		if err != nil {
			return nil, err
		}
		return String(v), nil
	case jparse.Number:
		v, err := decode.Float[float64](p)
		if err != nil {
			return nil, err
		}
		return Number(v), nil
	case jparse.Bool:
		v, err := decode.Bool(p)
		if err != nil {
			return nil, err
		}
		return Bool(v), nil
	case jparse.Null:
		if _, err := p.Advance(); err != nil {
			return nil, err
		}
		return Null{}, nil
	}
	return nil, p.Fail(jparse.UnexpectedToken)
}
