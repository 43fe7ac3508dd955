// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package decode provides decoders for the standard shapes of JSON data:
// strings, booleans, the numeric families, nullable values, arrays, and
// string-keyed objects.
//
// Each decoder is a jparse.Decoder for its Go type. The base decoders
// handle single tokens; the combinators (Nullable, Slice, Map, and Struct)
// wrap other decoders to handle compound values. Decoders compose without
// restriction, so a decoder for a nested shape is built by nesting the
// corresponding combinators:
//
//	dec := decode.Map(decode.Slice(decode.Nullable(decode.Int[int64])))
//	v, err := jparse.Parse(input, dec)
//
// Numbers are scanned untyped, and each numeric decoder applies its own
// representation rules to the raw text of the token: the integer decoders
// accept only integer text, so a fractional part, an exponent, or a value
// out of range for the target type is reported as an InvalidNumber error
// rather than silently truncated.
package decode

import (
	"strconv"

	"github.com/creachadair/jparse"
	"golang.org/x/exp/constraints"
)

// String decodes a single string value, yielding its decoded content.
func String(p *jparse.Parser) (string, error) {
	tok, err := p.Advance()
	if err != nil {
		return "", err
	}
	if tok.Kind != jparse.String {
		return "", p.FailAt(jparse.UnexpectedToken, tok)
	}
	return tok.Value, nil
}

// Bool decodes a single boolean value.
func Bool(p *jparse.Parser) (bool, error) {
	tok, err := p.Advance()
	if err != nil {
		return false, err
	}
	if tok.Kind != jparse.Bool {
		return false, p.FailAt(jparse.UnexpectedToken, tok)
	}
	return tok.Lexeme == "true", nil
}

// Int decodes a single number into the signed integer type T. The number
// must be written as an integer: a fraction or exponent in the text, or a
// value out of range for T, is an InvalidNumber error.
func Int[T constraints.Signed](p *jparse.Parser) (T, error) {
	tok, err := number(p)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil || int64(T(v)) != v {
		return 0, p.FailAt(jparse.InvalidNumber, tok)
	}
	return T(v), nil
}

// Uint decodes a single number into the unsigned integer type T. The number
// must be written as an unsigned integer: a sign, fraction, or exponent in
// the text, or a value out of range for T, is an InvalidNumber error.
func Uint[T constraints.Unsigned](p *jparse.Parser) (T, error) {
	tok, err := number(p)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok.Lexeme, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return 0, p.FailAt(jparse.InvalidNumber, tok)
	}
	return T(v), nil
}

// Float decodes a single number into the floating-point type T. Values are
// converted at the precision of T; text that does not denote a finite value
// of T is an InvalidNumber error.
func Float[T constraints.Float](p *jparse.Parser) (T, error) {
	tok, err := number(p)
	if err != nil {
		return 0, err
	}
	bits := 64
	if _, ok := any(T(0)).(float32); ok {
		bits = 32
	}
	v, err := strconv.ParseFloat(tok.Lexeme, bits)
	if err != nil {
		return 0, p.FailAt(jparse.InvalidNumber, tok)
	}
	return T(v), nil
}

// number consumes a Number token on behalf of the numeric decoders.
func number(p *jparse.Parser) (jparse.Token, error) {
	tok, err := p.Advance()
	if err != nil {
		return jparse.Token{}, err
	}
	if tok.Kind != jparse.Number {
		return jparse.Token{}, p.FailAt(jparse.UnexpectedToken, tok)
	}
	return tok, nil
}

// Nullable adapts dec to permit null, decoding null as a nil pointer and
// any other value as a pointer to the result of dec. Nesting Nullable
// resolves null at the outermost level: the inner decoder is not consulted
// when null appears.
func Nullable[T any](dec jparse.Decoder[T]) jparse.Decoder[*T] {
	return func(p *jparse.Parser) (*T, error) {
		if ok, err := p.Check(jparse.Null); err != nil {
			return nil, err
		} else if ok {
			if _, err := p.Advance(); err != nil {
				return nil, err
			}
			return nil, nil
		}
		v, err := dec(p)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// Slice returns a decoder for an array whose elements are decoded by dec.
// An empty array yields an empty, non-nil slice.
func Slice[T any](dec jparse.Decoder[T]) jparse.Decoder[[]T] {
	return func(p *jparse.Parser) ([]T, error) {
		if _, err := p.Consume(jparse.LSquare); err != nil {
			return nil, err
		}
		vs := []T{}
		if err := commaList(p, jparse.RSquare, func() error {
			v, err := dec(p)
			if err != nil {
				return err
			}
			vs = append(vs, v)
			return nil
		}); err != nil {
			return nil, err
		}
		return vs, nil
	}
}

// Map returns a decoder for an object whose member values are decoded by
// dec. Member keys must be strings; a duplicate key silently overwrites the
// earlier value. An empty object yields an empty, non-nil map.
func Map[T any](dec jparse.Decoder[T]) jparse.Decoder[map[string]T] {
	return func(p *jparse.Parser) (map[string]T, error) {
		if _, err := p.Consume(jparse.LBrace); err != nil {
			return nil, err
		}
		m := make(map[string]T)
		if err := commaList(p, jparse.RBrace, func() error {
			key, err := p.Advance()
			if err != nil {
				return err
			}
			if key.Kind != jparse.String {
				return p.FailAt(jparse.UnexpectedToken, key)
			}
			if _, err := p.Consume(jparse.Colon); err != nil {
				return err
			}
			v, err := dec(p)
			if err != nil {
				return err
			}
			m[key.Value] = v
			return nil
		}); err != nil {
			return nil, err
		}
		return m, nil
	}
}

// commaList consumes the comma-separated elements that follow an opening
// bracket, calling elem once per element, and then consumes the closing
// token end. A comma after an element is consumed eagerly; if end follows
// it, the comma was trailing and is reported as an UnexpectedToken anchored
// at the comma itself.
func commaList(p *jparse.Parser, end jparse.Kind, elem func() error) error {
	hadComma := false
	for {
		if ok, err := p.Check(end); err != nil {
			return err
		} else if ok {
			break
		}
		if err := elem(); err != nil {
			return err
		}

		if ok, err := p.Check(jparse.Comma); err != nil {
			return err
		} else if !ok {
			hadComma = false
			break
		}
		if _, err := p.Advance(); err != nil {
			return err
		}
		hadComma = true
	}
	if hadComma {
		return p.FailPrev(jparse.UnexpectedToken)
	}
	_, err := p.Consume(end)
	return err
}
